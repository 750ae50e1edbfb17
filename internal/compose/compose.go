// Package compose writes Docker Compose templates for common databases.
// Documents are built from typed structs and marshalled with yaml.v3, so the
// output is deterministic: a fixed binary always writes byte-identical files.
// All credentials and ports are environment-variable placeholders with
// documented defaults; nothing is interpolated at write time.
package compose

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"server-init/internal/logger"
)

// Service is one service entry of a compose document.
type Service struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name,omitempty"`
	Restart       string   `yaml:"restart,omitempty"`
	Command       string   `yaml:"command,omitempty"`
	Environment   []string `yaml:"environment,omitempty"`
	Ports         []string `yaml:"ports,omitempty"`
	Volumes       []string `yaml:"volumes,omitempty"`
}

// Volume is a named volume entry.
type Volume struct {
	Driver string `yaml:"driver"`
}

// File is a full compose document. yaml.v3 sorts map keys on marshal, which
// keeps service and volume ordering stable across runs.
type File struct {
	Services map[string]Service `yaml:"services"`
	Volumes  map[string]Volume  `yaml:"volumes,omitempty"`
}

// Template pairs an output filename with its document builder.
type Template struct {
	Name     string
	Filename string
	Build    func() File
}

// header is prepended to every written template. It must stay free of
// timestamps or host details so output is reproducible.
const header = "# Docker Compose template written by server-init.\n" +
	"# Override credentials and ports via environment variables before `docker compose up -d`.\n\n"

// Templates returns the templates the databases component writes, in a fixed
// order.
func Templates() []Template {
	return []Template{
		{Name: "PostgreSQL", Filename: "postgres.yml", Build: Postgres},
		{Name: "MySQL", Filename: "mysql.yml", Build: MySQL},
		{Name: "Redis", Filename: "redis.yml", Build: Redis},
		{Name: "Full stack", Filename: "fullstack.yml", Build: FullStack},
	}
}

func postgresService() Service {
	return Service{
		Image:         "postgres:16-alpine",
		ContainerName: "postgres",
		Restart:       "unless-stopped",
		Environment: []string{
			"POSTGRES_USER=${POSTGRES_USER:-postgres}",
			"POSTGRES_PASSWORD=${POSTGRES_PASSWORD:-changeme}",
			"POSTGRES_DB=${POSTGRES_DB:-app}",
		},
		Ports:   []string{"${POSTGRES_PORT:-5432}:5432"},
		Volumes: []string{"postgres_data:/var/lib/postgresql/data"},
	}
}

func mysqlService() Service {
	return Service{
		Image:         "mysql:8.4",
		ContainerName: "mysql",
		Restart:       "unless-stopped",
		Environment: []string{
			"MYSQL_ROOT_PASSWORD=${MYSQL_ROOT_PASSWORD:-changeme}",
			"MYSQL_DATABASE=${MYSQL_DATABASE:-app}",
			"MYSQL_USER=${MYSQL_USER:-app}",
			"MYSQL_PASSWORD=${MYSQL_PASSWORD:-changeme}",
		},
		Ports:   []string{"${MYSQL_PORT:-3306}:3306"},
		Volumes: []string{"mysql_data:/var/lib/mysql"},
	}
}

func redisService() Service {
	return Service{
		Image:         "redis:7-alpine",
		ContainerName: "redis",
		Restart:       "unless-stopped",
		Command:       "redis-server --requirepass ${REDIS_PASSWORD:-changeme}",
		Ports:         []string{"${REDIS_PORT:-6379}:6379"},
		Volumes:       []string{"redis_data:/data"},
	}
}

// Postgres builds the standalone PostgreSQL template.
func Postgres() File {
	return File{
		Services: map[string]Service{"postgres": postgresService()},
		Volumes:  map[string]Volume{"postgres_data": {Driver: "local"}},
	}
}

// MySQL builds the standalone MySQL template.
func MySQL() File {
	return File{
		Services: map[string]Service{"mysql": mysqlService()},
		Volumes:  map[string]Volume{"mysql_data": {Driver: "local"}},
	}
}

// Redis builds the standalone Redis template. Redis keeps its state in its
// own append-only files, so the volume is all it needs.
func Redis() File {
	return File{
		Services: map[string]Service{"redis": redisService()},
		Volumes:  map[string]Volume{"redis_data": {Driver: "local"}},
	}
}

// FullStack builds the combined template with all three databases.
func FullStack() File {
	return File{
		Services: map[string]Service{
			"postgres": postgresService(),
			"mysql":    mysqlService(),
			"redis":    redisService(),
		},
		Volumes: map[string]Volume{
			"postgres_data": {Driver: "local"},
			"mysql_data":    {Driver: "local"},
			"redis_data":    {Driver: "local"},
		},
	}
}

// Render marshals a compose document with the standard header.
func Render(f File) ([]byte, error) {
	body, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compose document: %w", err)
	}
	return append([]byte(header), body...), nil
}

// Writer writes the database templates into a target directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the target directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteAll renders every template into the target directory, overwriting
// existing files unconditionally, and returns the written paths.
func (w *Writer) WriteAll() ([]string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create template directory %s: %w", w.dir, err)
	}

	var written []string
	for _, tpl := range Templates() {
		data, err := Render(tpl.Build())
		if err != nil {
			return written, err
		}
		path := filepath.Join(w.dir, tpl.Filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write template %s: %w", path, err)
		}
		logger.Debug("[DEBUG] Wrote %s template to %s\n", tpl.Name, path)
		written = append(written, path)
	}
	return written, nil
}
