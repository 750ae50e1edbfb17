package config

// RunConfig is the immutable per-run configuration built once at startup from
// the parsed command line. It determines which components run and how
// component inclusion is decided.
// - Interactive: true when no component flag (and no --all) was given; every
//   component is then confirmed via a blocking yes/no console prompt.
// - All: true when --all was given; selects every component without prompting.
// - Selected: set of component flags given on the command line (CLI mode).
// - Defaults: optional values loaded from the defaults YAML file.
type RunConfig struct {
	Interactive bool
	All         bool
	Selected    map[string]bool
	Defaults    Defaults
}

// NewRunConfig builds the run configuration from the parsed flag values.
// Mode selection follows the component flags: if --all or at least one
// component flag was set, the run is non-interactive and only the flagged
// components execute; otherwise interactive mode prompts for everything.
func NewRunConfig(all bool, selected map[string]bool, defaults Defaults) *RunConfig {
	cfg := &RunConfig{
		All:      all,
		Selected: make(map[string]bool),
		Defaults: defaults,
	}
	for flag, set := range selected {
		if set {
			cfg.Selected[flag] = true
		}
	}
	cfg.Interactive = !all && len(cfg.Selected) == 0
	return cfg
}

// Wants reports whether the component identified by flag was selected on the
// command line. Only meaningful in CLI mode; interactive runs ask instead.
func (c *RunConfig) Wants(flag string) bool {
	return c.All || c.Selected[flag]
}

// GitDefaults holds the global git identity applied by the git component.
// Empty values mean "do not configure" in CLI mode and "prompt" in
// interactive mode.
type GitDefaults struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// SwapDefaults controls the swap file created by the swap component.
// - SizeGB: swap file size in gigabytes.
type SwapDefaults struct {
	SizeGB int `yaml:"size_gb"`
}

// SSHDefaults controls the key pair generated by the ssh component.
// - Type: key algorithm passed to ssh-keygen (e.g., ed25519).
// - Comment: key comment; defaults to user@host when empty.
type SSHDefaults struct {
	Type    string `yaml:"type"`
	Comment string `yaml:"comment"`
}

// DatabaseDefaults controls where the Docker Compose database templates are
// written. Dir supports a leading ~ for the invoking user's home directory.
type DatabaseDefaults struct {
	Dir string `yaml:"dir"`
}

// Defaults is the top-level structure of the optional defaults YAML file.
// Every field has a built-in fallback, so the file may be partial or absent.
type Defaults struct {
	Git       GitDefaults      `yaml:"git"`
	Swap      SwapDefaults     `yaml:"swap"`
	Timezone  string           `yaml:"timezone"`
	SSH       SSHDefaults      `yaml:"ssh"`
	Databases DatabaseDefaults `yaml:"databases"`
}
