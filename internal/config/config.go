package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds everything the server and the lambda entrypoint need.
// It is built once at startup and passed into constructors; nothing in
// the request path reads the environment.
type Config struct {
	// Port the standalone server listens on.
	Port string `yaml:"port"`

	// DBPath is the sqlite file backing lookups. The file is read-only
	// at serving time; it is produced out of band by cmd/csv2sqlite.
	DBPath string `yaml:"db_path"`

	// Origins is the CORS allow-list.
	Origins []string `yaml:"origins"`
}

// Load builds a Config from the environment, optionally overlaid by a YAML
// file named in CONFIG_FILE.
//
// Environment variables:
//   - PORT: listen port (default "8000")
//   - COUNTY_DB: path to the sqlite store (default "data.db")
//   - CORS_ORIGINS: comma-separated allowed origins
//   - CONFIG_FILE: optional YAML file; non-zero fields win over env
func Load() (Config, error) {
	cfg := Config{
		Port:   "8000",
		DBPath: "data.db",
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}
	if path := strings.TrimSpace(os.Getenv("COUNTY_DB")); path != "" {
		cfg.DBPath = path
	}
	if origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.Origins = append(cfg.Origins, o)
			}
		}
	}

	if file := strings.TrimSpace(os.Getenv("CONFIG_FILE")); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var overlay Config
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if overlay.Port != "" {
			cfg.Port = overlay.Port
		}
		if overlay.DBPath != "" {
			cfg.DBPath = overlay.DBPath
		}
		if len(overlay.Origins) > 0 {
			cfg.Origins = overlay.Origins
		}
	}

	return cfg, nil
}
