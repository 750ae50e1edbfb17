package installer

import (
	"os"
	"path/filepath"

	"server-init/internal/compose"
	"server-init/internal/logger"
	"server-init/internal/userhome"
)

// templateDir resolves the configured template directory against the
// invoking user's home.
func templateDir(ctx *Context) string {
	return userhome.Expand(ctx.Cfg.Defaults.Databases.Dir)
}

// templatesWritten reports whether every template file already exists.
func templatesWritten(ctx *Context) bool {
	dir := templateDir(ctx)
	for _, tpl := range compose.Templates() {
		if _, err := os.Stat(filepath.Join(dir, tpl.Filename)); err != nil {
			return false
		}
	}
	return true
}

// applyDatabases writes the Docker Compose templates, overwriting any
// previous copies.
func applyDatabases(ctx *Context) error {
	writer := compose.NewWriter(templateDir(ctx))
	written, err := writer.WriteAll()
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Info("[INFO] Wrote %s\n", path)
	}
	logger.Info("[INFO] Start a database with: docker compose -f %s up -d\n",
		filepath.Join(writer.Dir(), "postgres.yml"))
	return nil
}
