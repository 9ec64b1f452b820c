package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "firedept", Database: "firedept_backoffice", SSLMode: "disable"},
		JWT:      JWTConfig{Secret: "change-me-to-a-real-secret-of-32-chars!", TokenExpiryMinute: 60},
		Budget:   BudgetConfig{DefaultSeedAmount: 1_000_000},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cfg := validConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("FillsSchedulerDefaults", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "0 0 6 * * *", cfg.Scheduler.OverdueRequestDigest)
		assert.Equal(t, "0 0 7 * * *", cfg.Scheduler.DeadlineReminderDigest)
	})

	t.Run("RejectsShortJWTSecret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Secret = "too-short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("RejectsBadPort", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("RejectsNegativeSeed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Budget.DefaultSeedAmount = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("RejectsMissingDatabase", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.Database = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_Load(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	const base = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "firedept"
  password: "firedept"
  database: "firedept_backoffice"
  ssl_mode: "disable"
jwt:
  secret: "change-me-to-a-real-secret-of-32-chars!"
  token_expiry_minutes: 60
budget:
  default_seed_amount: 1000000
`

	t.Run("Success", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, base))
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
		assert.Equal(t, int64(1_000_000), cfg.Budget.DefaultSeedAmount)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := Load(writeConfig(t, base))
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Contains(t, cfg.GetDatabaseConnectionString(), "db.internal:5432")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
