package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DB_DRIVER", "")
	t.Setenv("IMPORT_NEAR_DUPLICATE_DISTANCE", "")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 2, cfg.Import.NearDuplicateDistance)
	assert.Equal(t, int64(5<<20), cfg.Import.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "DB_DRIVER=SQLite\nDB_SQLITE_PATH=/tmp/finance-test.db\nIMPORT_NEAR_DUPLICATE_DISTANCE=4\nCORS_ALLOW_ORIGINS=http://a.test, http://b.test\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("ENV_FILE", envFile)
	for _, key := range []string{"DB_DRIVER", "DB_SQLITE_PATH", "IMPORT_NEAR_DUPLICATE_DISTANCE", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, "/tmp/finance-test.db", cfg.Database.DSN())
	assert.Equal(t, 4, cfg.Import.NearDuplicateDistance)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowOrigins)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "mysql"},
		Import:   ImportConfig{MaxUploadBytes: 10},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = DriverSQLite
	assert.NoError(t, cfg.Validate())

	cfg.Import.NearDuplicateDistance = -1
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "finance",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=finance sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/finance?sslmode=disable", cfg.URL())
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		cfg := &Config{Server: ServerConfig{LogLevel: input}}
		assert.Equal(t, want, cfg.SlogLevel(), input)
	}
}
