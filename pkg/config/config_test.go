package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
feeds:
  primaryArrivalsURL: https://feeds.example.com/arrivals
  stationLookupURL: https://feeds.example.com/stations
  rawArrivalsURL: https://provider.example.com/departures
  terminusRefinementURL: https://feeds.example.com/terminus
`)

	require.NoError(t, Load(path))

	assert.Equal(t, DefaultTimeoutSeconds, Config.Feeds.TimeoutSeconds)
	assert.Equal(t, DefaultMaxWaitMinutes, Config.Reconciler.MaxWaitMinutes)
	assert.Equal(t, "en", Config.DefaultLanguage)
}

func TestLoadRejectsInvalidFeedURL(t *testing.T) {
	path := writeConfig(t, `
feeds:
  primaryArrivalsURL: not-a-url
  stationLookupURL: https://feeds.example.com/stations
  rawArrivalsURL: https://provider.example.com/departures
  terminusRefinementURL: https://feeds.example.com/terminus
`)

	assert.Error(t, Load(path))
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("MASAR_DEFAULT_LANGUAGE", "ar")

	path := writeConfig(t, `
feeds:
  primaryArrivalsURL: https://feeds.example.com/arrivals
  stationLookupURL: https://feeds.example.com/stations
  rawArrivalsURL: https://provider.example.com/departures
  terminusRefinementURL: https://feeds.example.com/terminus
`)

	require.NoError(t, Load(path))
	assert.Equal(t, "ar", Config.DefaultLanguage)
}

func TestLoadMissingFile(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.yml")))
}
