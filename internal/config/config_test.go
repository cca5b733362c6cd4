package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderreach/internal/database"
)

// isolate runs the test from an empty directory so no stray .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, database.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "founderreach.db", cfg.DB.Path)
	assert.False(t, cfg.PINRequired)
	assert.Equal(t, 30, cfg.SessionMinutes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_USER", "reach")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "founderreach")
	t.Setenv("PIN_REQUIRED", "true")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, database.DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, "reach", cfg.DB.User)
	assert.Equal(t, "db.internal", cfg.DB.Endpoint)
	assert.Equal(t, 3307, cfg.DB.Port)
	assert.True(t, cfg.PINRequired)
}

func TestLoad_EnvFileAndConfigFile(t *testing.T) {
	dir := isolate(t)

	envFile := filepath.Join(dir, "local.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FOUNDERREACH_TEST_UNUSED=1\nLOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("FOUNDERREACH_TEST_UNUSED")
		_ = os.Unsetenv("LOG_FORMAT")
	})

	yamlFile := filepath.Join(dir, "founderreach.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("session_minutes: 45\ndb_path: data.db\n"), 0o600))

	cfg, err := Load(Options{EnvFile: envFile, ConfigFile: yamlFile})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 45, cfg.SessionMinutes)
	assert.Equal(t, "data.db", cfg.DB.Path)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load(Options{})
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SESSION_MINUTES", "0")
	_, err = Load(Options{})
	assert.Error(t, err)
}

func TestLoad_ParameterStore(t *testing.T) {
	isolate(t)

	orig := paramLoader
	t.Cleanup(func() { paramLoader = orig })

	paramLoader = func(region, path string) (map[string]interface{}, error) {
		assert.Equal(t, "ap-northeast-2", region)
		assert.Equal(t, "/service/founderreach", path)
		return map[string]interface{}{
			"User":     "admin",
			"Password": "secret",
			"Endpoint": "rds.example",
			"Port":     3306,
			"Database": "reach",
		}, nil
	}

	cfg, err := Load(Options{ParamPath: "/service/founderreach", Region: "ap-northeast-2"})
	require.NoError(t, err)
	assert.Equal(t, database.DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, "admin", cfg.DB.User)
	assert.Equal(t, "rds.example", cfg.DB.Endpoint)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "reach", cfg.DB.Database)

	paramLoader = func(string, string) (map[string]interface{}, error) {
		return nil, errors.New("access denied")
	}
	_, err = Load(Options{ParamPath: "/service/founderreach", Region: "ap-northeast-2"})
	assert.ErrorContains(t, err, "access denied")
}

func TestConfigureLogging(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	assert.NoError(t, cfg.ConfigureLogging())

	cfg.LogLevel = "loud"
	assert.Error(t, cfg.ConfigureLogging())

	cfg.LogLevel = "info"
	cfg.LogFormat = "xml"
	assert.Error(t, cfg.ConfigureLogging())
}
