// Package userhome resolves the invoking user, not the effective process
// user. A server bootstrap normally runs under sudo, where HOME points at
// root; per-user side effects (SSH key, uv binary, git identity, template
// directory) must land in SUDO_USER's home instead, and every package that
// touches those paths must resolve them the same way.
package userhome

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// User returns the login of the user running the bootstrap. Under sudo that
// is SUDO_USER, not root.
func User() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		return sudoUser
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

// Dir returns the invoking user's home directory, falling back to the
// process home when lookup fails.
func Dir() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		if u, err := user.Lookup(sudoUser); err == nil {
			return u.HomeDir
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "/root"
}

// Expand replaces a leading ~ with the invoking user's home directory.
func Expand(path string) string {
	if path == "~" {
		return Dir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(Dir(), path[2:])
	}
	return path
}
