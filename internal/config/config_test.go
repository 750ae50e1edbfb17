package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRunConfigInteractiveWhenNoFlags(t *testing.T) {
	cfg := NewRunConfig(false, map[string]bool{}, BuiltinDefaults())
	if !cfg.Interactive {
		t.Error("Interactive = false with no flags, want true")
	}
	if cfg.Wants("docker") {
		t.Error("Wants(docker) = true with no flags, want false")
	}
}

func TestNewRunConfigComponentFlags(t *testing.T) {
	selected := map[string]bool{"docker": true, "nginx": true, "git": false}
	cfg := NewRunConfig(false, selected, BuiltinDefaults())

	if cfg.Interactive {
		t.Error("Interactive = true with component flags, want false")
	}
	if !cfg.Wants("docker") || !cfg.Wants("nginx") {
		t.Error("flagged components not selected")
	}
	if cfg.Wants("git") || cfg.Wants("fail2ban") {
		t.Error("unflagged components selected")
	}
}

func TestNewRunConfigAll(t *testing.T) {
	cfg := NewRunConfig(true, map[string]bool{}, BuiltinDefaults())
	if cfg.Interactive {
		t.Error("Interactive = true with --all, want false")
	}
	for _, flag := range []string{"update", "docker", "swap", "timezone"} {
		if !cfg.Wants(flag) {
			t.Errorf("Wants(%s) = false with --all, want true", flag)
		}
	}
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	defaults, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadDefaults on missing file returned error: %v", err)
	}
	if defaults.Swap.SizeGB != 2 || defaults.Timezone != "Etc/UTC" || defaults.SSH.Type != "ed25519" {
		t.Errorf("missing file did not yield builtin defaults: %+v", defaults)
	}
}

func TestLoadDefaultsEmptyPath(t *testing.T) {
	defaults, err := LoadDefaults("")
	if err != nil {
		t.Fatalf("LoadDefaults(\"\") returned error: %v", err)
	}
	if defaults.Databases.Dir != "~/database-templates" {
		t.Errorf("Databases.Dir = %q, want builtin default", defaults.Databases.Dir)
	}
}

func TestLoadDefaultsFile(t *testing.T) {
	content := `git:
  name: Jane Doe
  email: jane@example.com
swap:
  size_gb: 4
ssh:
  comment: jane@server
`
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	defaults, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("LoadDefaults returned error: %v", err)
	}
	if defaults.Git.Name != "Jane Doe" || defaults.Git.Email != "jane@example.com" {
		t.Errorf("git identity not parsed: %+v", defaults.Git)
	}
	if defaults.Swap.SizeGB != 4 {
		t.Errorf("Swap.SizeGB = %d, want 4", defaults.Swap.SizeGB)
	}
	// Unset fields fall back to the builtins.
	if defaults.Timezone != "Etc/UTC" {
		t.Errorf("Timezone = %q, want builtin default", defaults.Timezone)
	}
	if defaults.SSH.Type != "ed25519" {
		t.Errorf("SSH.Type = %q, want builtin default", defaults.SSH.Type)
	}
	if defaults.SSH.Comment != "jane@server" {
		t.Errorf("SSH.Comment = %q, want jane@server", defaults.SSH.Comment)
	}
}

func TestLoadDefaultsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte("git: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDefaults(path); err == nil {
		t.Error("LoadDefaults on malformed YAML returned nil error, want error")
	}
}
