package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"server-init/internal/config"
	"server-init/internal/installer"
	"server-init/internal/logger"
	"server-init/internal/prompt"
	"server-init/internal/summary"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the optional defaults YAML file
// (git identity, swap size, timezone, SSH key settings, template directory).
var configPath string

// allFlag selects every component without prompting.
var allFlag bool

// uvAlias mirrors --python; uv users reach for either name.
var uvAlias bool

// componentFlags maps each component flag name to its bound value. The flags
// themselves are registered from the component registry so the CLI surface
// and the execution order can never drift apart.
var componentFlags = make(map[string]*bool)

// rootCmd is the single command of the `server-init` CLI. There are no
// subcommands: components are chosen by flags, or interactively when no
// component flag is given.
var rootCmd = &cobra.Command{
	Use:   "server-init",
	Short: "Bootstrap a fresh Ubuntu/Debian server",
	Long: `server-init bootstraps a fresh Ubuntu/Debian server: it updates packages,
installs common developer tooling (git, Docker, Python/uv, Nginx, Certbot,
UFW, Fail2ban), writes Docker Compose templates for common databases,
generates an SSH key, and prints a summary of what is installed.

With no flags every component is offered interactively as a yes/no question.
With component flags (or --all) only the flagged components run, without
prompting. Components always execute in the same fixed order regardless of
flag order.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before the command body.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: runBootstrap,
}

// runBootstrap builds the immutable run configuration from the parsed flags,
// executes the component registry, and prints the post-run summary. The first
// failing component aborts the run; the error surfaces through Execute as a
// non-zero exit.
func runBootstrap(cmd *cobra.Command, args []string) error {
	defaults, err := config.LoadDefaults(configPath)
	if err != nil {
		return err
	}

	selected := make(map[string]bool)
	for flag, value := range componentFlags {
		selected[flag] = *value
	}
	if uvAlias {
		selected["python"] = true
	}
	cfg := config.NewRunConfig(allFlag, selected, defaults)

	if cfg.Interactive {
		logger.Info("[INFO] No component flags given. Answer y/n for each component.\n")
	}

	ctx := &installer.Context{
		Cfg: cfg,
		Ask: prompt.New(os.Stdin, os.Stdout),
	}
	if err := installer.Run(ctx, installer.Registry()); err != nil {
		return err
	}

	summary.Report(summary.Run(context.Background(), summary.Probes(cfg.Defaults)))
	return nil
}

// init registers all flags. Component flags come straight from the registry.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to optional defaults YAML file")
	rootCmd.Flags().BoolVar(&allFlag, "all", false, "Run every component without prompting")

	for _, c := range installer.Registry() {
		value := new(bool)
		componentFlags[c.Flag] = value
		rootCmd.Flags().BoolVar(value, c.Flag, false, "Select the "+c.Title+" component (non-interactive)")
	}
	rootCmd.Flags().BoolVar(&uvAlias, "uv", false, "Alias for --python")
}

// Execute parses the command line and runs the bootstrap. Unknown flags print
// the usage text; any error exits non-zero.
func Execute() {
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.Println(c.UsageString())
		return err
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
