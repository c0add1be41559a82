package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DB struct {
		// Path to the SQLite database file owned by this process.
		Path string `envconfig:"PRESTAMOS_DB_PATH" default:"prestamos.db"`
	}

	Export struct {
		// Directory that database exports are copied into.
		Dir string `envconfig:"PRESTAMOS_EXPORT_DIR" default:"."`
	}
}

// DSN builds the SQLite DSN. _foreign_keys=on makes every connection enforce
// the cascade constraints the schema relies on.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", c.DB.Path)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return errors.New("missing PRESTAMOS_DB_PATH")
	}
	if c.Export.Dir == "" {
		return errors.New("missing PRESTAMOS_EXPORT_DIR")
	}
	return nil
}
