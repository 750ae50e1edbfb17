package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"server-init/internal/logger"
	"server-init/internal/userhome"
)

// sshKeyPath returns the private key path for the configured key type,
// e.g. ~/.ssh/id_ed25519.
func sshKeyPath(ctx *Context) string {
	return filepath.Join(userhome.Dir(), ".ssh", "id_"+ctx.Cfg.Defaults.SSH.Type)
}

func sshKeyExists(ctx *Context) bool {
	_, err := os.Stat(sshKeyPath(ctx))
	return err == nil
}

// applySSHKey generates a passphrase-less key pair with ssh-keygen and prints
// the public key so it can be pasted into authorized_keys or a Git forge.
func applySSHKey(ctx *Context) error {
	keyPath := sshKeyPath(ctx)
	if err := os.MkdirAll(filepath.Dir(keyPath), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(keyPath), err)
	}

	comment := ctx.Cfg.Defaults.SSH.Comment
	if comment == "" {
		host, _ := os.Hostname()
		comment = fmt.Sprintf("%s@%s", userhome.User(), host)
	}

	if err := runCommand("ssh-keygen", "-t", ctx.Cfg.Defaults.SSH.Type, "-f", keyPath, "-N", "", "-C", comment); err != nil {
		return err
	}

	pub, err := os.ReadFile(keyPath + ".pub")
	if err != nil {
		return fmt.Errorf("failed to read generated public key: %w", err)
	}
	logger.Info("[INFO] Generated SSH key %s\n", keyPath)
	logger.Info("[INFO] Public key:\n%s", pub)
	return nil
}
