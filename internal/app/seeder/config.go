package seeder

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings.
type Config struct {
	FixturePath string `yaml:"fixture_path" env:"SEEDER_FIXTURE_PATH" env-default:"fixtures/shows.yaml"`
	// Force seeds even when the catalog already holds shows.
	Force  bool `yaml:"force"   env:"SEEDER_FORCE"`
	DryRun bool `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
	// Migrate applies the embedded schema before seeding a fresh database.
	Migrate bool `yaml:"migrate" env:"SEEDER_MIGRATE"`
	// Timeout bounds the whole run, connection included.
	Timeout time.Duration `yaml:"timeout" env:"SEEDER_TIMEOUT" env-default:"5m"`
}

// LoadConfig reads seeder configuration from the YAML file at path, or from
// the environment alone when path is empty. ENV overrides YAML, and
// env-default tags fill the rest.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	var errs []error
	if c.FixturePath == "" {
		errs = append(errs, errors.New("fixture_path is required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive (got %s)", c.Timeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("seeder config: %w", errors.Join(errs...))
	}
	return nil
}
