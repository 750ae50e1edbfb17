package installer

import (
	"fmt"
	"os"
	"strings"

	"server-init/internal/logger"
)

// essentialPackages are the baseline CLI tools most later components assume.
var essentialPackages = []string{
	"curl", "wget", "build-essential", "unzip", "htop", "jq", "tree",
	"ca-certificates", "gnupg", "lsb-release",
}

// applyUpdate refreshes the package index and upgrades installed packages.
func applyUpdate(_ *Context) error {
	if err := runCommand("apt-get", "update"); err != nil {
		return err
	}
	return runCommand("apt-get", "upgrade", "-y")
}

// essentialsInstalled reports whether the probe subset of the essentials is
// already on PATH. apt handles per-package idempotency anyway; this only
// drives the warning path.
func essentialsInstalled(_ *Context) bool {
	for _, tool := range []string{"curl", "wget", "jq", "htop", "tree"} {
		if !commandExists(tool) {
			return false
		}
	}
	return true
}

func applyEssentials(_ *Context) error {
	return aptInstall(essentialPackages...)
}

const swapFile = "/swapfile"

// fstabSwapEntry keeps the swap file active across reboots.
const fstabSwapEntry = "/swapfile none swap sw 0 0"

// swapActive reports whether the system already has active swap or an
// existing swap file on disk.
func swapActive(_ *Context) bool {
	if out, err := captureCommand("swapon", "--noheadings", "--show"); err == nil && out != "" {
		return true
	}
	_, err := os.Stat(swapFile)
	return err == nil
}

// applySwap creates and activates a swap file of the configured size, and
// registers it in /etc/fstab so it survives reboots.
func applySwap(ctx *Context) error {
	size := fmt.Sprintf("%dG", ctx.Cfg.Defaults.Swap.SizeGB)
	logger.Info("[INFO] Creating %s swap file at %s...\n", size, swapFile)

	if err := runCommand("fallocate", "-l", size, swapFile); err != nil {
		return err
	}
	if err := os.Chmod(swapFile, 0600); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", swapFile, err)
	}
	if err := runCommand("mkswap", swapFile); err != nil {
		return err
	}
	if err := runCommand("swapon", swapFile); err != nil {
		return err
	}

	// Append the fstab entry only once.
	fstab, err := os.ReadFile("/etc/fstab")
	if err != nil {
		return fmt.Errorf("failed to read /etc/fstab: %w", err)
	}
	if fstabHasSwapEntry(string(fstab)) {
		logger.Debug("[DEBUG] /etc/fstab already references %s\n", swapFile)
		return nil
	}
	f, err := os.OpenFile("/etc/fstab", os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open /etc/fstab for appending: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(fstabSwapEntry + "\n"); err != nil {
		return fmt.Errorf("failed to append swap entry to /etc/fstab: %w", err)
	}
	return nil
}

// fstabHasSwapEntry reports whether fstab already mounts the swap file. Only
// an uncommented line whose device field is the swap file counts; commented
// leftovers or other paths containing "/swapfile" must not suppress the
// append.
func fstabHasSwapEntry(fstab string) bool {
	for _, line := range strings.Split(fstab, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] == swapFile {
			return true
		}
	}
	return false
}

// timezoneConfigured reports whether the system timezone already matches the
// configured target.
func timezoneConfigured(ctx *Context) bool {
	current, err := captureCommand("timedatectl", "show", "-p", "Timezone", "--value")
	return err == nil && current == ctx.Cfg.Defaults.Timezone
}

func applyTimezone(ctx *Context) error {
	tz := ctx.Cfg.Defaults.Timezone
	logger.Info("[INFO] Setting timezone to %s...\n", tz)
	return runCommand("timedatectl", "set-timezone", tz)
}
