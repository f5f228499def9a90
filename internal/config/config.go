package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration, resolved once at startup and
// passed explicitly into the layers that need it.
type Config struct {
	DatabaseURL    string
	Port           string
	FrontendOrigin string
}

// Load reads .env (if present) and binds the process environment.
// DATABASE_URL has no default on purpose: running against an undefined store
// must fail at boot, not at the first request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3000")

	cfg := &Config{
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		Port:           viper.GetString("PORT"),
		FrontendOrigin: viper.GetString("FRONTEND_ORIGIN"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}
