// Package config loads the client configuration with viper.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader for an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the file at path over the defaults. A missing file, or an empty
// path, yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if err := l.read(v, path); err != nil {
			return nil, err
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &cfg, nil
}

func (l *Loader) read(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.info("no " + path + " found, using defaults")
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error()), "path", path)
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	return nil
}

func (l *Loader) info(msg string) {
	if l.Logger != nil {
		l.Logger.Info(msg)
	}
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultConfig()

	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout_ms", defaults.API.TimeoutMs)
	v.SetDefault("api.rate_limit", defaults.API.RateLimit)
	v.SetDefault("api.rate_burst", defaults.API.RateBurst)

	v.SetDefault("cache.max_entries", defaults.Cache.MaxEntries)
	v.SetDefault("cache.history_staleness_ms", defaults.Cache.HistoryStalenessMs)

	v.SetDefault("log.json", defaults.Log.JSON)
	v.SetDefault("log.requests", defaults.Log.Requests)
}
