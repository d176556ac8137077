package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config is read from the environment. A .env file in the working directory
// is loaded first by godotenv/autoload in main.go.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`
	AssetsDir string `env:"ASSETS_DIR" envDefault:"./public"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	AdminToken     string `env:"ADMIN_TOKEN"`
	HashSalt       string `env:"HASH_SALT"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SweepInterval   time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`
	MaxSessions     int           `env:"SESSION_MAX" envDefault:"10000"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.MaxSessions <= 0 {
		return errors.New("SESSION_MAX must be positive")
	}
	if c.MetricsEnabled && c.DatabasePath == "" {
		return errors.New("DATABASE_PATH is required when metrics are enabled")
	}
	return nil
}
