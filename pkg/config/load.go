// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When an env file path is
// given and exists it is loaded first; a missing file is not an error so the
// same binary runs in containers configured purely via the environment.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using system environment")
		}
	} else {
		for _, path := range envFilePath {
			if err := godotenv.Load(path); err != nil {
				logger.Debug("env file not loaded", "path", path, "error", err)
				continue
			}
			logger.Info("environment loaded from file", "path", path)
			break
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("app config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"db_max_open_conns", cfg.DB.MaxOpenConns,
		"statement_size", cfg.StatementSize,
	)
	return &cfg, nil
}
