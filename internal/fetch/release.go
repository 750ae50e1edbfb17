// Package fetch downloads release archives from GitHub and installs the
// binaries they contain. It is the vendor-independent install path used for
// tools that ship prebuilt Linux binaries instead of apt packages.
package fetch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"server-init/internal/logger"
)

// Release represents the subset of a GitHub release JSON response we need.
type Release struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v1.0.0)
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
	} `json:"assets"`
}

// archiveSuffixes are the asset formats Extract knows how to unpack.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// LatestRelease fetches the latest release metadata for a GitHub repository
// such as "astral-sh/uv".
func LatestRelease(repo string) (*Release, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET error fetching latest release of %s: %w", repo, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub release fetch failed for %s: HTTP status %d", repo, resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub release JSON for %s: %w", repo, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))
	return &release, nil
}

// AssetURL returns the download URL of the first archive asset whose name
// contains one of the given platform patterns, trying patterns in order.
func (r *Release) AssetURL(patterns []string) (name, url string, err error) {
	for _, pattern := range patterns {
		for _, asset := range r.Assets {
			lower := strings.ToLower(asset.Name)
			if !strings.Contains(lower, pattern) {
				continue
			}
			for _, suffix := range archiveSuffixes {
				if strings.HasSuffix(lower, suffix) {
					logger.Debug("[DEBUG] Found matching asset: %s\n", asset.Name)
					return asset.Name, asset.BrowserDownloadURL, nil
				}
			}
		}
	}
	return "", "", fmt.Errorf("no archive asset matching %v in release %s", patterns, r.TagName)
}

// LinuxPatterns returns asset name patterns for the current Linux
// architecture, most specific first. Release naming is not uniform across
// projects, so several spellings are tried.
func LinuxPatterns() []string {
	switch runtime.GOARCH {
	case "arm64":
		return []string{"aarch64-unknown-linux-gnu", "linux_arm64", "linux-arm64", "linux-aarch64"}
	default:
		return []string{"x86_64-unknown-linux-gnu", "linux_amd64", "linux-amd64", "linux-x86_64"}
	}
}

// Download fetches the content at url and writes it to destPath.
func Download(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
