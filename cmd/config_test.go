package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.True(t, cfg.DBAutoMigrate)
	assert.False(t, cfg.PaymentAPIEnabled)
	assert.Equal(t, 5*time.Second, cfg.ProductAPITimeout)
	assert.Equal(t, 10*time.Second, cfg.PaymentAPITimeout)
	assert.False(t, cfg.TracingEnabled())
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ORDERS_TEST_UNUSED=1\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PAYMENT_API_ENABLED", "true")
	t.Setenv("PRODUCT_API_TIMEOUT", "750ms")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.PaymentAPIEnabled)
	assert.Equal(t, 750*time.Millisecond, cfg.ProductAPITimeout)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("PAYMENT_API_TIMEOUT", "soon")

	_, err := LoadConfig("")

	assert.ErrorContains(t, err, "PAYMENT_API_TIMEOUT")
}

func TestConfig_Database(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "require"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=require", cfg.Database().DSN())
}
