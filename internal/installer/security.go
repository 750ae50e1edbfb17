package installer

import (
	"fmt"
	"os"
	"strings"

	"server-init/internal/logger"
)

// firewallActive reports whether UFW is installed and already enabled.
func firewallActive(_ *Context) bool {
	if !commandExists("ufw") {
		return false
	}
	out, err := captureCommand("ufw", "status")
	return err == nil && strings.Contains(out, "Status: active")
}

// applyFirewall allows SSH, HTTP and HTTPS and enables UFW. The OpenSSH rule
// goes in before enabling so a remote session is never cut off.
func applyFirewall(_ *Context) error {
	if !commandExists("ufw") {
		if err := aptInstall("ufw"); err != nil {
			return err
		}
	}
	for _, rule := range []string{"OpenSSH", "80/tcp", "443/tcp"} {
		if err := runCommand("ufw", "allow", rule); err != nil {
			return err
		}
	}
	return runCommand("ufw", "--force", "enable")
}

const fail2banJailPath = "/etc/fail2ban/jail.local"

// fail2banJail is the minimal sshd jail written on install. jail.local
// overrides jail.conf without being clobbered by package upgrades.
const fail2banJail = `[DEFAULT]
bantime = 1h
findtime = 10m
maxretry = 5

[sshd]
enabled = true
`

func fail2banInstalled(_ *Context) bool {
	if commandExists("fail2ban-server") {
		return true
	}
	_, err := os.Stat(fail2banJailPath)
	return err == nil
}

// applyFail2ban installs Fail2ban, writes the sshd jail, and enables the
// service.
func applyFail2ban(_ *Context) error {
	if err := aptInstall("fail2ban"); err != nil {
		return err
	}
	if err := os.WriteFile(fail2banJailPath, []byte(fail2banJail), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fail2banJailPath, err)
	}
	logger.Info("[INFO] Wrote sshd jail to %s\n", fail2banJailPath)
	return systemctlEnableNow("fail2ban")
}
