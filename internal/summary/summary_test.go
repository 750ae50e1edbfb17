package summary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"server-init/internal/config"
)

func TestRunProbeMissingBinary(t *testing.T) {
	probes := []Probe{
		{Name: "Ghost", Binary: "server-init-no-such-binary", VersionArgs: []string{"--version"}},
	}
	results := Run(context.Background(), probes)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Status != StatusMissing {
		t.Errorf("status = %s, want %s", results[0].Status, StatusMissing)
	}
}

func TestRunProbePresentBinary(t *testing.T) {
	// sh is guaranteed on any system this tool targets.
	probes := []Probe{
		{Name: "Shell", Binary: "sh", VersionArgs: []string{"-c", "echo v1.2.3"}},
	}
	results := Run(context.Background(), probes)
	if results[0].Status != StatusOK {
		t.Fatalf("status = %s, want %s", results[0].Status, StatusOK)
	}
	if results[0].Version != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", results[0].Version)
	}
}

func TestRunProbeFileMarker(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "id_ed25519")

	probes := []Probe{{Name: "SSH key", File: keyPath}}
	if results := Run(context.Background(), probes); results[0].Status != StatusMissing {
		t.Errorf("status for absent file = %s, want %s", results[0].Status, StatusMissing)
	}

	if err := os.WriteFile(keyPath, []byte("key"), 0600); err != nil {
		t.Fatal(err)
	}
	if results := Run(context.Background(), probes); results[0].Status != StatusOK {
		t.Errorf("status for present file = %s, want %s", results[0].Status, StatusOK)
	}
}

func TestProbesCoverInstallableTools(t *testing.T) {
	probes := Probes(config.BuiltinDefaults())

	want := map[string]bool{
		"Git": false, "Docker": false, "Python 3": false, "uv": false,
		"Nginx": false, "Certbot": false, "UFW": false, "Fail2ban": false,
		"SSH key": false,
	}
	for _, p := range probes {
		if _, ok := want[p.Name]; ok {
			want[p.Name] = true
		}
	}
	for name, covered := range want {
		if !covered {
			t.Errorf("no probe for %s", name)
		}
	}
}

func TestProbesUseConfiguredKeyType(t *testing.T) {
	defaults := config.BuiltinDefaults()
	defaults.SSH.Type = "rsa"

	for _, p := range Probes(defaults) {
		if p.Name == "SSH key" {
			if filepath.Base(p.File) != "id_rsa" {
				t.Errorf("SSH key probe file = %s, want id_rsa", p.File)
			}
			return
		}
	}
	t.Error("no SSH key probe found")
}

func TestFirstLine(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{input: "git version 2.43.0", want: "git version 2.43.0"},
		{input: "line one\nline two", want: "line one"},
		{input: "", want: ""},
	}
	for _, tc := range testCases {
		if got := firstLine(tc.input); got != tc.want {
			t.Errorf("firstLine(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
