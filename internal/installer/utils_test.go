package installer

import "testing"

func TestRunCommandEnvOverridesHome(t *testing.T) {
	// git config --global relies on this override landing in the child's
	// environment and winning over the inherited HOME.
	err := runCommandEnv([]string{"HOME=/tmp/bootstrap-home"}, "sh", "-c", `test "$HOME" = /tmp/bootstrap-home`)
	if err != nil {
		t.Errorf("HOME override not visible to child process: %v", err)
	}
}

func TestRunCommandSetsNoninteractiveFrontend(t *testing.T) {
	err := runCommand("sh", "-c", `test "$DEBIAN_FRONTEND" = noninteractive`)
	if err != nil {
		t.Errorf("DEBIAN_FRONTEND=noninteractive not set for child process: %v", err)
	}
}

func TestRunCommandFailure(t *testing.T) {
	if err := runCommand("sh", "-c", "exit 3"); err == nil {
		t.Error("runCommand on failing command returned nil error, want error")
	}
}
