package installer

import (
	"path"
	"path/filepath"

	"server-init/internal/fetch"
	"server-init/internal/logger"
	"server-init/internal/userhome"
)

// uvRepo is the GitHub repository uv releases are published from.
const uvRepo = "astral-sh/uv"

func uvInstalled(_ *Context) bool {
	return commandExists("uv")
}

// applyPython installs the system Python toolchain from apt and uv from its
// GitHub release archive. uv is not packaged by Debian/Ubuntu, so the release
// binary is placed in ~/.local/bin directly; the astral.sh install script is
// the fallback when the release download fails.
func applyPython(_ *Context) error {
	if err := aptInstall("python3", "python3-venv", "python3-pip"); err != nil {
		return err
	}
	if commandExists("uv") {
		logger.Warn("[WARN] uv is already on PATH. Skipping uv install.\n")
		return nil
	}

	if err := installUVFromRelease(); err != nil {
		logger.Warn("[WARN] GitHub release install failed (%v). Falling back to the astral.sh installer.\n", err)
		return runCommand("sh", "-c", "curl -LsSf https://astral.sh/uv/install.sh | sh")
	}
	logger.Info("[INFO] Installed uv to ~/.local/bin. Reload your shell to pick it up.\n")
	return nil
}

// installUVFromRelease downloads the latest uv release asset for this
// architecture and installs the uv and uvx binaries into ~/.local/bin.
func installUVFromRelease() error {
	release, err := fetch.LatestRelease(uvRepo)
	if err != nil {
		return err
	}
	name, url, err := release.AssetURL(fetch.LinuxPatterns())
	if err != nil {
		return err
	}

	archive := filepath.Join("/tmp", path.Base(url))
	logger.Info("[INFO] Downloading %s (%s)...\n", name, release.TagName)
	if err := fetch.Download(url, archive); err != nil {
		return err
	}

	binDir := filepath.Join(userhome.Dir(), ".local", "bin")
	installed, err := fetch.InstallBinary(archive, "uv", binDir)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Installed uv at %s\n", installed)

	// uvx ships in the same archive; its absence is not fatal.
	if _, err := fetch.InstallBinary(archive, "uvx", binDir); err != nil {
		logger.Warn("[WARN] uvx not installed: %v\n", err)
	}
	return nil
}
