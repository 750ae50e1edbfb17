// Package summary re-probes the system after a bootstrap run and prints a
// checklist of which tools are present. It inspects final observable state
// only; it does not track what the run itself did.
package summary

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"server-init/internal/config"
	"server-init/internal/logger"
	"server-init/internal/userhome"
)

// Status is the observed presence of a tool.
type Status string

const (
	// StatusOK means the tool was found.
	StatusOK Status = "ok"
	// StatusMissing means the tool was not found.
	StatusMissing Status = "missing"
)

// CheckResult is the outcome of probing one tool.
type CheckResult struct {
	Name    string
	Status  Status
	Version string
}

// Probe describes how to detect one tool: an executable to look up and the
// arguments that print its version. A Probe with a File instead of a Binary
// checks for a filesystem marker (used for the SSH key).
type Probe struct {
	Name        string
	Binary      string
	VersionArgs []string
	File        string
}

// probeTimeout bounds each version command; a hung tool must not stall the
// report.
const probeTimeout = 5 * time.Second

// Probes returns the default probe list covering every installable
// component. The SSH key marker resolves against the invoking user's home,
// the same directory the key is generated in under sudo.
func Probes(defaults config.Defaults) []Probe {
	home := userhome.Dir()
	return []Probe{
		{Name: "Git", Binary: "git", VersionArgs: []string{"--version"}},
		{Name: "Docker", Binary: "docker", VersionArgs: []string{"--version"}},
		{Name: "Python 3", Binary: "python3", VersionArgs: []string{"--version"}},
		{Name: "uv", Binary: "uv", VersionArgs: []string{"--version"}},
		{Name: "Nginx", Binary: "nginx", VersionArgs: []string{"-v"}},
		{Name: "Certbot", Binary: "certbot", VersionArgs: []string{"--version"}},
		{Name: "UFW", Binary: "ufw", VersionArgs: []string{"--version"}},
		{Name: "Fail2ban", Binary: "fail2ban-server", VersionArgs: []string{"--version"}},
		{Name: "SSH key", File: filepath.Join(home, ".ssh", "id_"+defaults.SSH.Type)},
	}
}

// Run executes every probe and returns the results in probe order.
func Run(ctx context.Context, probes []Probe) []CheckResult {
	results := make([]CheckResult, 0, len(probes))
	for _, p := range probes {
		results = append(results, runProbe(ctx, p))
	}
	return results
}

func runProbe(ctx context.Context, p Probe) CheckResult {
	if p.File != "" {
		if _, err := os.Stat(p.File); err != nil {
			return CheckResult{Name: p.Name, Status: StatusMissing}
		}
		return CheckResult{Name: p.Name, Status: StatusOK, Version: p.File}
	}

	if _, err := exec.LookPath(p.Binary); err != nil {
		return CheckResult{Name: p.Name, Status: StatusMissing}
	}

	version, err := commandOutput(ctx, p.Binary, p.VersionArgs...)
	if err != nil {
		// Present but the version call failed; still report it as found.
		logger.Debug("[DEBUG] Version probe for %s failed: %v\n", p.Binary, err)
		return CheckResult{Name: p.Name, Status: StatusOK}
	}
	return CheckResult{Name: p.Name, Status: StatusOK, Version: firstLine(version)}
}

// Report prints the checklist plus the static post-install reminders.
func Report(results []CheckResult) {
	logger.Info("\n[INFO] Setup summary:\n")
	dockerFound := false
	uvFound := false
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			if r.Version != "" {
				logger.Info("  [x] %-10s %s\n", r.Name, r.Version)
			} else {
				logger.Info("  [x] %s\n", r.Name)
			}
		default:
			logger.Warn("  [ ] %s not installed\n", r.Name)
		}
		if r.Name == "Docker" && r.Status == StatusOK {
			dockerFound = true
		}
		if r.Name == "uv" && r.Status == StatusOK {
			uvFound = true
		}
	}

	if dockerFound {
		logger.Warn("[WARN] Log out and back in so docker group membership takes effect.\n")
	}
	if uvFound {
		logger.Warn("[WARN] Reload your shell (or add ~/.local/bin to PATH) to use uv.\n")
	}
}

func commandOutput(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	// nginx -v writes to stderr, so capture both streams.
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
