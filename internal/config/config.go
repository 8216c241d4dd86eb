package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment      string        `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	ServiceAPIPort          string        `envconfig:"SERVICE_API_PORT" default:"8080"`
	ServiceShutdownTimeout  time.Duration `envconfig:"SERVICE_SHUTDOWN_TIMEOUT" default:"5s"`
	PostgresDSN             string        `envconfig:"POSTGRES_DSN" required:"true"`
	PostgresMaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
	PostgresMaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"10"`
	PostgresConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"30m"`
	AnalyticsTimeZone       string        `envconfig:"ANALYTICS_TIME_ZONE" default:"UTC"`
	AnalyticsCacheEnabled   bool          `envconfig:"ANALYTICS_CACHE_ENABLED" default:"true"`
	AnalyticsCacheTTL       time.Duration `envconfig:"ANALYTICS_CACHE_TTL" default:"60s"`
	AnalyticsCacheMaxRows   int64         `envconfig:"ANALYTICS_CACHE_MAX_ROWS" default:"100000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location is the zone calendar periods are cut in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.AnalyticsTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYTICS_TIME_ZONE %q: %w", c.AnalyticsTimeZone, err)
	}
	return loc, nil
}
