package main

import (
	"server-init/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The server-init project bootstraps a fresh Ubuntu/Debian server:
//   - Runs a fixed, ordered list of components: package update, essential CLI tools,
//     git, Docker, Python/uv, Nginx, Certbot, UFW firewall, Fail2ban, database
//     Docker Compose templates, an SSH key, a swap file, and the system timezone
//   - Decides per component whether to run it, either from CLI flags
//     (non-interactive) or via a blocking yes/no console prompt (interactive)
//   - Keeps every component idempotent: each probes whether the tool is already
//     present before installing, and warns instead of reinstalling blindly
//   - Writes static Docker Compose templates (Postgres, MySQL, Redis, full stack)
//     parameterized only by environment-variable placeholders
//   - Finishes with a summary that re-probes the system for each tool's presence
//     and version rather than tracking per-step success
//
// Error handling strategy:
//   - User-input errors (unknown flag, malformed yes/no answer) are recovered
//     locally via a usage message or a re-prompt
//   - The first failing external command (apt-get, systemctl, ufw, ...) aborts
//     the whole run with a non-zero exit status; there is no rollback or retry
//
// Integration points:
//   - Shells out to apt-get, systemctl, ufw, ssh-keygen, timedatectl and the
//     Docker convenience install script; none of these are reimplemented
//   - Installs uv by downloading the matching GitHub release archive directly,
//     managing executable placement rather than relying on a package manager
func main() {
	cmd.Execute()
}
