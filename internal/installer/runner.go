package installer

import (
	"fmt"

	"server-init/internal/logger"
)

// Run walks the component registry in order and executes each selected
// component. Selection comes from the CLI flags in non-interactive mode, or
// from a blocking yes/no prompt per component in interactive mode.
//
// Execution is strictly sequential and fail-fast: the first component whose
// action returns an error aborts the run immediately, leaving whatever
// partial system state the underlying tools produced. There is no rollback.
func Run(ctx *Context, components []Component) error {
	for _, c := range components {
		selected, err := wantsComponent(ctx, c)
		if err != nil {
			return err
		}
		if !selected {
			logger.Debug("[DEBUG] Skipping %s (not selected)\n", c.Title)
			continue
		}

		// Idempotency guard: warn instead of blindly reinstalling, with an
		// interactive override for reconfiguration.
		if c.Installed != nil && c.Installed(ctx) {
			logger.Warn("[WARN] %s is already installed or configured.\n", c.Title)
			if !ctx.Cfg.Interactive {
				continue
			}
			again, err := ctx.Ask.YesNo(fmt.Sprintf("Reinstall/reconfigure %s anyway?", c.Title))
			if err != nil {
				return err
			}
			if !again {
				continue
			}
		}

		logger.Info("[INFO] Setting up %s...\n", c.Title)
		if err := c.Apply(ctx); err != nil {
			logger.Error("[ERROR] %s failed: %v\n", c.Title, err)
			return fmt.Errorf("%s: %w", c.Title, err)
		}
		logger.Info("[INFO] %s done.\n", c.Title)
	}
	return nil
}

// wantsComponent decides whether a component runs. CLI mode never prompts;
// interactive mode always does.
func wantsComponent(ctx *Context, c Component) (bool, error) {
	if !ctx.Cfg.Interactive {
		return ctx.Cfg.Wants(c.Flag), nil
	}
	return ctx.Ask.YesNo(c.Prompt)
}
