package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Backoffice"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"backoffice"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret       string `envconfig:"JWT_SECRET" default:"change-me"`
		TokenExpMinutes int    `envconfig:"TOKEN_EXP_MINUTES" default:"1440"`
	}

	Billing struct {
		// Due day for responsible-party charges, which have no plan billing
		// day to inherit.
		DefaultDueDay int `envconfig:"BILLING_DEFAULT_DUE_DAY" default:"10"`
	}

	Pricing struct {
		// "fallback" keeps an adjusted enrollment priced via the old cost
		// times the multiplier when no bracket matches; "strict" fails the
		// plan's adjustment instead.
		AdjustmentPolicy string `envconfig:"PRICING_ADJUSTMENT_POLICY" default:"fallback"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
