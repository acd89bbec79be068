package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	HistoryPolicyRecent = "recent"
	HistoryPolicyOldest = "oldest"
)

// Config holds every setting the relay reads from the environment
type Config struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty       bool          `env:"LOG_PRETTY" envDefault:"false"`

	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	StreamAPIKey    string `env:"STREAM_API_KEY"`
	StreamAPISecret string `env:"STREAM_API_SECRET"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`

	Chat ChatConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	RateLimit RateLimitSettings
}

// ChatConfig controls history loading and the channel the reply is mirrored into
type ChatConfig struct {
	HistoryLimit  int    `env:"CHAT_HISTORY_LIMIT" envDefault:"10"`
	HistoryPolicy string `env:"CHAT_HISTORY_POLICY" envDefault:"recent"`
	BotUserID     string `env:"BOT_USER_ID" envDefault:"ai_bot"`
	ChannelType   string `env:"CHANNEL_TYPE" envDefault:"messaging"`
	ChannelPrefix string `env:"CHANNEL_PREFIX" envDefault:"chat-"`
	ChannelName   string `env:"CHANNEL_NAME" envDefault:"Cortexa"`
}

// Load reads envFile when it exists and then parses the environment.
// An empty envFile skips the file lookup.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Chat.HistoryPolicy {
	case HistoryPolicyRecent, HistoryPolicyOldest:
	default:
		return fmt.Errorf("invalid CHAT_HISTORY_POLICY %q: must be %q or %q",
			c.Chat.HistoryPolicy, HistoryPolicyRecent, HistoryPolicyOldest)
	}

	if c.Chat.HistoryLimit < 0 {
		return fmt.Errorf("invalid CHAT_HISTORY_LIMIT %d: must not be negative", c.Chat.HistoryLimit)
	}

	return nil
}

// ValidateServe checks the credentials that only the HTTP server needs
func (c *Config) ValidateServe() error {
	var errs []error
	if c.StreamAPIKey == "" {
		errs = append(errs, errors.New("STREAM_API_KEY environment variable not set"))
	}
	if c.StreamAPISecret == "" {
		errs = append(errs, errors.New("STREAM_API_SECRET environment variable not set"))
	}
	if c.OpenAIAPIKey == "" {
		errs = append(errs, errors.New("OPENAI_API_KEY environment variable not set"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
