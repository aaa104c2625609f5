package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebridge/internal/errors"
)

func TestDefaults(t *testing.T) {
	defaults := Defaults()

	assert.Empty(t, defaults.Environment)
	assert.Equal(t, "utf8", defaults.Encoding)
	assert.Equal(t, 30*time.Second, defaults.HTTPTimeout)
	assert.Equal(t, 30*time.Second, defaults.DownloadTimeout)
	assert.False(t, defaults.InsecureSkipVerify)
	assert.Equal(t, "info", defaults.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILEBRIDGE_ENCODING", "latin1")
	t.Setenv("FILEBRIDGE_ENVIRONMENT", "browser")
	t.Setenv("FILEBRIDGE_HTTP_TIMEOUT", "5s")
	t.Setenv("FILEBRIDGE_LOG_LEVEL", "debug")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "latin1", settings.Encoding)
	assert.Equal(t, "browser", settings.Environment)
	assert.Equal(t, 5*time.Second, settings.HTTPTimeout)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILEBRIDGE_ENVIRONMENT", "mainframe")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "environment")
}

func TestValidateTimeouts(t *testing.T) {
	settings := Defaults()
	settings.HTTPTimeout = -time.Second
	err := settings.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))

	settings = Defaults()
	settings.DownloadTimeout = -time.Second
	require.Error(t, settings.Validate())
}
