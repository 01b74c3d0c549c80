package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	for _, key := range []string{"ASSETSIM_STORE_DRIVER", "ASSETSIM_STORE_PATH", "ASSETSIM_LOCALE", "ASSETSIM_LISTEN_ADDR", "ASSETSIM_DEBUG", "ASSETSIM_RULES_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, Settings{StoreDriver: "file", StorePath: "data", Locale: "ja-JP", ListenAddr: ":8080"}, settings)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv("ASSETSIM_STORE_DRIVER", "sqlite")
	t.Setenv("ASSETSIM_STORE_PATH", "/tmp/assetsim.db")
	t.Setenv("ASSETSIM_LOCALE", "en-US")
	t.Setenv("ASSETSIM_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("ASSETSIM_DEBUG", "true")
	t.Setenv("ASSETSIM_RULES_FILE", "rules.yaml")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverSQLite, settings.StoreDriver)
	assert.Equal(t, "/tmp/assetsim.db", settings.StorePath)
	assert.Equal(t, "en-US", settings.Locale)
	assert.Equal(t, "127.0.0.1:9000", settings.ListenAddr)
	assert.True(t, settings.Debug)
	assert.Equal(t, "rules.yaml", settings.RulesFile)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("ASSETSIM_STORE_DRIVER", "redis")
	_, err := LoadSettings()
	assert.ErrorContains(t, err, `unsupported store driver "redis"`)

	t.Setenv("ASSETSIM_STORE_DRIVER", "none")
	t.Setenv("ASSETSIM_DEBUG", "maybe")
	_, err = LoadSettings()
	assert.Error(t, err)
}

func TestLoadActuals(t *testing.T) {
	actuals, err := LoadActuals(filepath.Join("testdata", "actuals.yaml"))
	require.NoError(t, err)
	require.Len(t, actuals, 2)
	assert.Equal(t, 2025, actuals[0].Year)
	assert.Equal(t, "7900000", actuals[0].Income.String())
	assert.Equal(t, 2026, actuals[1].Year)
	assert.Equal(t, "6900000", actuals[1].Expense.String())

	_, err = LoadActuals(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
