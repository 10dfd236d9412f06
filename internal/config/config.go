package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the client needs to talk to a board server.
type Config struct {
	Server struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"server"`
	Board struct {
		PageSize int `yaml:"page_size"`
	} `yaml:"board"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Path returns the config file path based on the APP_ENV environment variable.
func Path() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

// Load reads the yaml config at path and applies HACSA_* env overrides.
// A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = 30
	}
	if cfg.Board.PageSize <= 0 {
		cfg.Board.PageSize = 10
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.URL = "http://localhost:8080"
	cfg.Server.TimeoutSeconds = 30
	cfg.Board.PageSize = 10
	cfg.Log.Level = "info"
	return cfg
}

// applyEnv lets env vars win over the file, mirroring LoadDotEnv precedence.
func applyEnv(cfg *Config) {
	if v := os.Getenv("HACSA_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("HACSA_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("HACSA_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Board.PageSize = n
		}
	}
	if v := os.Getenv("HACSA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
