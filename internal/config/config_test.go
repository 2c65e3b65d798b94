package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "meu_app")
	for _, key := range []string{"DB_DRIVER", "DB_PORT", "HOST", "PORT", "DEBUG", "ENVIRONMENT"} {
		unsetEnv(t, key)
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key) //nolint:errcheck // restored by t.Setenv cleanup
}

func TestLoad_Defaults(t *testing.T) {
	setDatabaseEnv(t)

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "app", cfg.DB.User)
	assert.Equal(t, "s3cret", cfg.DB.Password)
	assert.Equal(t, "meu_app", cfg.DB.Name)
	assert.Equal(t, 3306, cfg.DB.EffectivePort())
	assert.Equal(t, "db.internal:3306", cfg.DB.Address())
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_MissingRequired(t *testing.T) {
	cases := []string{"DB_HOST", "DB_USER", "DB_NAME"}

	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			setDatabaseEnv(t)
			unsetEnv(t, key)

			_, err := Load(nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), key+" is required")
		})
	}
}

func TestLoad_EmptyPasswordAllowed(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.DB.Password)
}

func TestLoad_Postgres(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.EffectivePort())
}

func TestLoad_ExplicitPortAndListener(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DB_PORT", "3307")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "false")

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "db.internal:3307", cfg.DB.Address())
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.False(t, cfg.Debug)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoad_InvalidDebug(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DEBUG", "maybe")

	_, err := Load(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEBUG")
}

func TestLoad_HelpWanted(t *testing.T) {
	setDatabaseEnv(t)

	_, err := Load([]string{"--help"})

	assert.True(t, errors.Is(err, ErrHelpWanted))
}

func TestDatabaseString_MasksPassword(t *testing.T) {
	d := Database{Driver: DriverMySQL, Host: "h", User: "u", Password: "s3cret", Name: "n"}

	assert.NotContains(t, d.String(), "s3cret")
}

func TestGet(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("CONFIG_TEST_KEY", "fallback"))

	t.Setenv("CONFIG_TEST_KEY", "value")
	assert.Equal(t, "value", Get("CONFIG_TEST_KEY", "fallback"))
}
