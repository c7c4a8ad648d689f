package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fuzzyclock_test")
	t.Setenv("JWT_SECRET", "supersecret")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("MQTT_BROKER_URL", "")
	t.Setenv("TICK_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
	assert.Equal(t, "tcp://0.0.0.0:1883", cfg.MQTTBrokerURL)
	assert.Equal(t, time.Minute, cfg.TickInterval)
}

func TestLoadTickInterval(t *testing.T) {
	setRequired(t)
	t.Setenv("TICK_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.TickInterval)

	t.Setenv("TICK_INTERVAL", "not-a-duration")
	_, err = Load()
	assert.Error(t, err)
}
