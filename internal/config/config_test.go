package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/views?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.ServiceEnvironment)
	assert.Equal(t, "8080", cfg.ServiceAPIPort)
	assert.Equal(t, 20, cfg.PostgresMaxOpenConns)
	assert.Equal(t, 10, cfg.PostgresMaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.PostgresConnMaxLifetime)
	assert.True(t, cfg.AnalyticsCacheEnabled)
	assert.Equal(t, time.Minute, cfg.AnalyticsCacheTTL)
	assert.EqualValues(t, 100000, cfg.AnalyticsCacheMaxRows)
	assert.Equal(t, 5*time.Second, cfg.ServiceShutdownTimeout)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_RequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	os.Unsetenv("POSTGRES_DSN")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/views")
	t.Setenv("ANALYTICS_TIME_ZONE", "Mars/Olympus")

	_, err := Load()
	assert.ErrorContains(t, err, "ANALYTICS_TIME_ZONE")
}
