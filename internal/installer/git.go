package installer

import (
	"server-init/internal/logger"
	"server-init/internal/userhome"
)

func gitInstalled(_ *Context) bool {
	return commandExists("git")
}

// applyGit installs git and sets the global identity. The identity comes
// from the defaults file in CLI mode, or from prompts in interactive mode
// (pre-filled with the defaults file values). When no name or email is
// available the identity is left untouched with a reminder.
func applyGit(ctx *Context) error {
	if !commandExists("git") {
		if err := aptInstall("git"); err != nil {
			return err
		}
	}

	name := ctx.Cfg.Defaults.Git.Name
	email := ctx.Cfg.Defaults.Git.Email
	if ctx.Cfg.Interactive {
		var err error
		if name, err = ctx.Ask.Line("Git user.name", name); err != nil {
			return err
		}
		if email, err = ctx.Ask.Line("Git user.email", email); err != nil {
			return err
		}
	}

	if name == "" && email == "" {
		logger.Warn("[WARN] No git identity provided. Configure later with: git config --global user.name/user.email\n")
		return nil
	}

	// git writes --global settings to $HOME/.gitconfig; point HOME at the
	// invoking user's home so the identity lands where the SSH key and uv do.
	gitEnv := []string{"HOME=" + userhome.Dir()}
	if name != "" {
		if err := runCommandEnv(gitEnv, "git", "config", "--global", "user.name", name); err != nil {
			return err
		}
	}
	if email != "" {
		if err := runCommandEnv(gitEnv, "git", "config", "--global", "user.email", email); err != nil {
			return err
		}
	}
	logger.Info("[INFO] Configured git identity: %s <%s>\n", name, email)
	return nil
}
