package installer

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"server-init/internal/logger"
)

// commandExists reports whether an executable is available on PATH. This is
// the standard already-installed probe for most components.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// runCommand executes an external command with its output streamed straight
// to the console, so long apt runs stay visible in real time.
// A non-nil error from here is fatal to the whole run (fail-fast policy).
func runCommand(name string, args ...string) error {
	return runCommandEnv(nil, name, args...)
}

// runCommandEnv behaves like runCommand with extra environment entries
// appended after the inherited environment, so they win on duplicates.
// DEBIAN_FRONTEND=noninteractive is always set so package installs never
// block on debconf questions; components use extraEnv for HOME overrides
// when a tool must write into the invoking user's home under sudo.
func runCommandEnv(extraEnv []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	cmd.Env = append(cmd.Env, extraEnv...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command '%s' failed: %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}

// captureCommand executes an external command and returns its trimmed
// combined output. Used for probes where the output is inspected rather than
// shown.
func captureCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("command '%s' failed: %w", strings.Join(cmd.Args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// aptInstall installs the given packages via apt-get.
func aptInstall(packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)
	return runCommand("apt-get", args...)
}

// systemctlEnableNow enables a systemd unit and starts it immediately.
func systemctlEnableNow(unit string) error {
	return runCommand("systemctl", "enable", "--now", unit)
}
