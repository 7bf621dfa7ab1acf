package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a file and environment variables.
// Priority: ENV > file > defaults (via env-default tags).
//
// The file path comes from CONFIG_PATH (fallback "./config.yaml"). cleanenv picks
// the parser by extension, so a ".env" file works as well as YAML. When the
// fallback file is missing, configuration comes from ENV + defaults only; a
// missing explicit CONFIG_PATH is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}
