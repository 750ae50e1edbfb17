package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in fallbacks applied when the defaults file is absent or partial.
const (
	defaultSwapSizeGB  = 2
	defaultTimezone    = "Etc/UTC"
	defaultSSHKeyType  = "ed25519"
	defaultTemplateDir = "~/database-templates"
)

// BuiltinDefaults returns the defaults used when no file is given.
func BuiltinDefaults() Defaults {
	return Defaults{
		Swap:      SwapDefaults{SizeGB: defaultSwapSizeGB},
		Timezone:  defaultTimezone,
		SSH:       SSHDefaults{Type: defaultSSHKeyType},
		Databases: DatabaseDefaults{Dir: defaultTemplateDir},
	}
}

// LoadDefaults reads the optional defaults YAML file at path and returns it
// merged over the built-in defaults. A missing file is not an error: the
// file only pre-answers values that interactive mode would otherwise prompt
// for (git identity) or that have sensible fallbacks (swap size, timezone,
// SSH key type, template directory). A malformed file is an error so typos
// surface instead of being silently ignored.
func LoadDefaults(path string) (Defaults, error) {
	defaults := BuiltinDefaults()
	if path == "" {
		return defaults, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to read defaults file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &defaults); err != nil {
		return defaults, fmt.Errorf("failed to unmarshal defaults file %s: %w", path, err)
	}

	// Re-apply fallbacks for fields the file zeroed or left out.
	if defaults.Swap.SizeGB <= 0 {
		defaults.Swap.SizeGB = defaultSwapSizeGB
	}
	if defaults.Timezone == "" {
		defaults.Timezone = defaultTimezone
	}
	if defaults.SSH.Type == "" {
		defaults.SSH.Type = defaultSSHKeyType
	}
	if defaults.Databases.Dir == "" {
		defaults.Databases.Dir = defaultTemplateDir
	}
	return defaults, nil
}
