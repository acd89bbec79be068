package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

type RateLimitSettings struct {
	Enabled bool `env:"RATELIMIT_ENABLED" envDefault:"false"`
	Global  int  `env:"RATELIMIT_GLOBAL" envDefault:"1000"` // requests per minute per client
	Chat    int  `env:"RATELIMIT_CHAT" envDefault:"60"`     // chat requests per minute per client

	// TrustProxy keys clients on the first X-Forwarded-For hop instead of the peer address
	TrustProxy bool `env:"RATELIMIT_TRUST_PROXY" envDefault:"false"`
}

type RateLimitConfig struct {
	Enabled    bool
	MaxHits    int
	Window     time.Duration
	TrustProxy bool
}

func (c *Config) GetRateLimitConfig(key string) RateLimitConfig {
	configs := map[string]RateLimitConfig{
		"global": {
			Enabled:    c.RateLimit.Enabled,
			MaxHits:    c.RateLimit.Global,
			Window:     time.Minute,
			TrustProxy: c.RateLimit.TrustProxy,
		},
		"chat": {
			Enabled:    c.RateLimit.Enabled,
			MaxHits:    c.RateLimit.Chat,
			Window:     time.Minute,
			TrustProxy: c.RateLimit.TrustProxy,
		},
	}

	if config, exists := configs[key]; exists {
		return config
	}

	log.Warn().Str("key", key).Msg("No rate limit config found")
	return RateLimitConfig{Enabled: false}
}
