package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db
  port: 5432
  user: airport
  password: secret
  name: airport
kafka:
  brokers: ["kafka:9092"]
  order_events_topic: order-events
payments:
  unit_rate: 25
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5432 user=airport password=secret dbname=airport sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, int64(25), cfg.Payments.UnitRate)
	assert.Equal(t, "stripe", cfg.Payments.Provider)
	assert.Equal(t, "usd", cfg.Payments.Currency)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 30, cfg.Booking.SeatHoldSeconds)
	assert.Equal(t, 5, cfg.Worker.ReconcileSweepMinutes)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
payments:
  provider: stripe
  stripe_secret_key: from-file
`)
	t.Setenv("AIRPORT_PAYMENTS_STRIPE_SECRET_KEY", "sk_test_env")
	t.Setenv("AIRPORT_PAYMENTS_PROVIDER", "midtrans")
	t.Setenv("AIRPORT_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk_test_env", cfg.Payments.StripeSecretKey)
	assert.Equal(t, "midtrans", cfg.Payments.Provider)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "http: [unterminated")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
