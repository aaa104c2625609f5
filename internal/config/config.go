// Package config loads filebridge settings from the environment and an
// optional YAML config file.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"filebridge/internal/domain"
	"filebridge/internal/errors"
)

const (
	envPrefix = "FILEBRIDGE"

	defaultHTTPTimeout     = 30 * time.Second
	defaultDownloadTimeout = 30 * time.Second
)

// Settings holds the tunable configuration for a client.
type Settings struct {
	// Environment forces a backend strategy ("local" or "browser").
	// Empty means autodetect.
	Environment string `mapstructure:"environment"`

	// Encoding is the default character encoding for text operations.
	Encoding string `mapstructure:"encoding"`

	// HTTPTimeout bounds each network fetch.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	// DownloadTimeout bounds the wait for a download acknowledgment.
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Defaults returns the baseline settings.
func Defaults() Settings {
	return Settings{
		Encoding:        domain.DefaultEncoding,
		HTTPTimeout:     defaultHTTPTimeout,
		DownloadTimeout: defaultDownloadTimeout,
		LogLevel:        "info",
	}
}

// Load reads settings from FILEBRIDGE_* environment variables and, when
// present, $HOME/.config/filebridge/config.yaml. Missing config files are
// not an error.
func Load() (*Settings, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("encoding", defaults.Encoding)
	v.SetDefault("http_timeout", defaults.HTTPTimeout)
	v.SetDefault("download_timeout", defaults.DownloadTimeout)
	v.SetDefault("insecure_skip_verify", defaults.InsecureSkipVerify)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "filebridge"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigurationError("config_file", v.ConfigFileUsed(), "failed to read config file", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, errors.NewConfigurationError("settings", "", "failed to unmarshal settings", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate rejects settings no backend could honor.
func (s *Settings) Validate() error {
	switch s.Environment {
	case "", "local", "node", "server", "browser":
	default:
		return errors.NewConfigurationError(
			"environment",
			s.Environment,
			"unsupported environment, expected one of: local, browser",
			nil,
		)
	}

	if s.HTTPTimeout < 0 {
		return errors.NewConfigurationError("http_timeout", s.HTTPTimeout.String(), "timeout must not be negative", nil)
	}
	if s.DownloadTimeout < 0 {
		return errors.NewConfigurationError("download_timeout", s.DownloadTimeout.String(), "timeout must not be negative", nil)
	}
	return nil
}
