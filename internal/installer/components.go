package installer

import (
	"server-init/internal/config"
	"server-init/internal/prompt"
)

// Context carries the per-run configuration and the interactive asker through
// the execution loop into the component actions. Built once at startup.
type Context struct {
	Cfg *config.RunConfig
	Ask *prompt.Asker
}

// Component is one independently selectable installation step.
// - Flag: the CLI flag selecting it in non-interactive mode.
// - Title: human-readable name used in log lines.
// - Prompt: the yes/no question asked in interactive mode.
// - Installed: already-present probe; nil means the step has no meaningful
//   pre-existing state (e.g., the package update).
// - Apply: the idempotent install/configure action.
// Components do not depend on each other's state; only their registry order
// matters (essentials before the tools that build on them).
type Component struct {
	Flag      string
	Title     string
	Prompt    string
	Installed func(ctx *Context) bool
	Apply     func(ctx *Context) error
}

// Registry returns the full ordered component list. The order is fixed: it is
// the execution order for both CLI and interactive mode.
func Registry() []Component {
	return []Component{
		{
			Flag:   "update",
			Title:  "System packages",
			Prompt: "Update and upgrade system packages?",
			Apply:  applyUpdate,
		},
		{
			Flag:      "essentials",
			Title:     "Essential tools",
			Prompt:    "Install essential tools (curl, wget, build-essential, jq, ...)?",
			Installed: essentialsInstalled,
			Apply:     applyEssentials,
		},
		{
			Flag:      "git",
			Title:     "Git",
			Prompt:    "Install and configure Git?",
			Installed: gitInstalled,
			Apply:     applyGit,
		},
		{
			Flag:      "docker",
			Title:     "Docker",
			Prompt:    "Install Docker Engine and Compose?",
			Installed: dockerInstalled,
			Apply:     applyDocker,
		},
		{
			Flag:      "python",
			Title:     "Python and uv",
			Prompt:    "Install Python 3 and the uv package manager?",
			Installed: uvInstalled,
			Apply:     applyPython,
		},
		{
			Flag:      "nginx",
			Title:     "Nginx",
			Prompt:    "Install and enable Nginx?",
			Installed: nginxInstalled,
			Apply:     applyNginx,
		},
		{
			Flag:      "certbot",
			Title:     "Certbot",
			Prompt:    "Install Certbot (Let's Encrypt) with the Nginx plugin?",
			Installed: certbotInstalled,
			Apply:     applyCertbot,
		},
		{
			Flag:      "firewall",
			Title:     "UFW firewall",
			Prompt:    "Configure the UFW firewall (allow SSH, HTTP, HTTPS)?",
			Installed: firewallActive,
			Apply:     applyFirewall,
		},
		{
			Flag:      "fail2ban",
			Title:     "Fail2ban",
			Prompt:    "Install and enable Fail2ban?",
			Installed: fail2banInstalled,
			Apply:     applyFail2ban,
		},
		{
			Flag:      "databases",
			Title:     "Database templates",
			Prompt:    "Write Docker Compose templates for Postgres, MySQL and Redis?",
			Installed: templatesWritten,
			Apply:     applyDatabases,
		},
		{
			Flag:      "ssh",
			Title:     "SSH key",
			Prompt:    "Generate an SSH key pair?",
			Installed: sshKeyExists,
			Apply:     applySSHKey,
		},
		{
			Flag:      "swap",
			Title:     "Swap file",
			Prompt:    "Create a swap file?",
			Installed: swapActive,
			Apply:     applySwap,
		},
		{
			Flag:      "timezone",
			Title:     "Timezone",
			Prompt:    "Set the system timezone?",
			Installed: timezoneConfigured,
			Apply:     applyTimezone,
		},
	}
}
