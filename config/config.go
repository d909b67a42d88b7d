package config

import (
	"github.com/habiliai/perplexity-mcp/errors"
)

type Config struct {
	LogConfig        `env:",squash"`
	PerplexityConfig `env:",squash"`
	ServerConfig     `env:",squash"`
}

func NewConfig() *Config {
	return &Config{
		LogConfig:        *NewLogConfig(),
		PerplexityConfig: *NewPerplexityConfig(),
		ServerConfig:     *NewServerConfig(),
	}
}

// Validate checks the settings the process cannot start without. A missing
// API key is not one of them: calls fail upstream with 401 instead.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportSSE:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unsupported transport %q", c.Transport)
	}

	if c.Transport == TransportSSE && (c.Port <= 0 || c.Port > 65535) {
		return errors.Wrapf(errors.ErrInvalidConfig, "port out of range: %d", c.Port)
	}

	if c.BaseURL == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "perplexity base url is empty")
	}

	if c.Timeout < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative perplexity timeout: %s", c.Timeout)
	}

	return nil
}

func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
