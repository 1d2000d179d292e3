package domain

import (
	"net/url"
	"time"

	"go.trai.ch/zerr"
)

// Defaults for the client configuration.
const (
	DefaultBaseURL         = "http://localhost:8080/api"
	DefaultTimeoutMs       = 3000
	DefaultCacheMaxEntries = 1024
	DefaultConfigFile      = "scaledash.yaml"
)

// Config is the resolved client configuration.
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Cache CacheConfig `mapstructure:"cache"`
	Log   LogConfig   `mapstructure:"log"`
}

// APIConfig controls the HTTP transport.
type APIConfig struct {
	// BaseURL is prefixed to every request path.
	BaseURL string `mapstructure:"base_url"`
	// TimeoutMs bounds every request.
	TimeoutMs int64 `mapstructure:"timeout_ms"`
	// RateLimit caps outbound requests per second. 0 disables the limiter.
	RateLimit float64 `mapstructure:"rate_limit"`
	// RateBurst is the limiter bucket size.
	RateBurst int `mapstructure:"rate_burst"`
}

// CacheConfig controls the query registry.
type CacheConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
	// HistoryStalenessMs is how long a history window is served from cache. -1 means forever.
	HistoryStalenessMs int64 `mapstructure:"history_staleness_ms"`
}

// LogConfig controls log output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
	// Requests logs every completed request with its status and duration.
	Requests bool `mapstructure:"requests"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			TimeoutMs: DefaultTimeoutMs,
			RateBurst: 1,
		},
		Cache: CacheConfig{
			MaxEntries:         DefaultCacheMaxEntries,
			HistoryStalenessMs: -1,
		},
	}
}

// Timeout returns the request timeout as a time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// HistoryStaleness returns the staleness policy for history windows.
func (c CacheConfig) HistoryStaleness() Staleness {
	return StalenessFromMillis(c.HistoryStalenessMs)
}

// Validate reports the first out-of-range value as an ErrInvalidConfig.
func (c *Config) Validate() error {
	invalid := func(field, reason string) error {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, reason), "field", field)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid("api.base_url", "base URL must be an absolute http(s) URL")
	}
	if c.API.TimeoutMs <= 0 {
		return invalid("api.timeout_ms", "timeout must be positive")
	}
	if c.API.RateLimit < 0 {
		return invalid("api.rate_limit", "rate limit must not be negative")
	}
	if c.API.RateLimit > 0 && c.API.RateBurst < 1 {
		return invalid("api.rate_burst", "rate burst must be at least 1")
	}
	if c.Cache.MaxEntries <= 0 {
		return invalid("cache.max_entries", "cache size must be positive")
	}
	return nil
}
