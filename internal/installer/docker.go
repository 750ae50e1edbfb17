package installer

import (
	"server-init/internal/fetch"
	"server-init/internal/logger"
	"server-init/internal/userhome"
)

// dockerInstallScript is Docker's official convenience installer. It handles
// the apt repository and GPG key wiring for every supported Debian/Ubuntu
// release, so we run it instead of duplicating that logic here.
const dockerInstallScript = "https://get.docker.com"

func dockerInstalled(_ *Context) bool {
	return commandExists("docker")
}

// applyDocker installs Docker Engine via the convenience script, adds the
// invoking user to the docker group, and enables the service.
func applyDocker(_ *Context) error {
	script := "/tmp/get-docker.sh"
	if err := fetch.Download(dockerInstallScript, script); err != nil {
		return err
	}
	if err := runCommand("sh", script); err != nil {
		return err
	}

	if user := userhome.User(); user != "" && user != "root" {
		if err := runCommand("usermod", "-aG", "docker", user); err != nil {
			return err
		}
		logger.Info("[INFO] Added %s to the docker group. Log out and back in for it to take effect.\n", user)
	}

	if err := systemctlEnableNow("docker"); err != nil {
		return err
	}

	// The script installs the compose plugin on current distros; verify so a
	// missing plugin surfaces now instead of at first `docker compose up`.
	if version, err := captureCommand("docker", "compose", "version"); err != nil {
		logger.Warn("[WARN] docker compose plugin not detected: %v\n", err)
	} else {
		logger.Info("[INFO] %s\n", version)
	}
	return nil
}
