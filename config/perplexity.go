package config

import "time"

const DefaultPerplexityBaseURL = "https://api.perplexity.ai"

type PerplexityConfig struct {
	APIKey  string `env:"PERPLEXITY_API_KEY"`
	BaseURL string `env:"PERPLEXITY_BASE_URL"`
	// Timeout bounds a single upstream call. Zero leaves the call unbounded.
	Timeout time.Duration `env:"PERPLEXITY_TIMEOUT"`
}

func NewPerplexityConfig() *PerplexityConfig {
	return &PerplexityConfig{
		BaseURL: DefaultPerplexityBaseURL,
	}
}
