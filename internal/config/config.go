package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// SupportedLanguages are the codes the detection capability can return.
var SupportedLanguages = []string{"ru", "en", "es", "pt", "he"}

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL,required"`

	NLUBaseURL        string `env:"NLU_BASE_URL,required"`
	NLUTimeoutSeconds int    `env:"NLU_TIMEOUT_SECONDS" envDefault:"3"`

	IntentConfidenceThreshold float64 `env:"INTENT_CONFIDENCE_THRESHOLD" envDefault:"0.70"`

	SessionTTLSeconds       int `env:"SESSION_TTL_SECONDS" envDefault:"1800"`
	SessionExtensionSeconds int `env:"SESSION_EXTENSION_SECONDS" envDefault:"900"`
	SessionCeilingSeconds   int `env:"SESSION_CEILING_SECONDS" envDefault:"3600"`

	PopularCacheTTLSeconds int `env:"POPULAR_CACHE_TTL_SECONDS" envDefault:"3600"`
	PopularLookbackDays    int `env:"POPULAR_LOOKBACK_DAYS" envDefault:"90"`
	PopularMinCount        int `env:"POPULAR_MIN_COUNT" envDefault:"3"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) NLUTimeout() time.Duration {
	return time.Duration(c.NLUTimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

func (c *Config) SessionExtension() time.Duration {
	return time.Duration(c.SessionExtensionSeconds) * time.Second
}

func (c *Config) SessionCeiling() time.Duration {
	return time.Duration(c.SessionCeilingSeconds) * time.Second
}

func (c *Config) PopularCacheTTL() time.Duration {
	return time.Duration(c.PopularCacheTTLSeconds) * time.Second
}

func (c *Config) PopularLookback() time.Duration {
	return time.Duration(c.PopularLookbackDays) * 24 * time.Hour
}

func (c *Config) Validate() error {
	if c.IntentConfidenceThreshold <= 0 || c.IntentConfidenceThreshold > 1 {
		return fmt.Errorf("INTENT_CONFIDENCE_THRESHOLD must be in (0, 1], got %v", c.IntentConfidenceThreshold)
	}
	if c.SessionCeilingSeconds < c.SessionTTLSeconds {
		return fmt.Errorf("SESSION_CEILING_SECONDS (%d) must be >= SESSION_TTL_SECONDS (%d)",
			c.SessionCeilingSeconds, c.SessionTTLSeconds)
	}
	if c.SessionExtensionSeconds <= 0 {
		return fmt.Errorf("SESSION_EXTENSION_SECONDS must be positive, got %d", c.SessionExtensionSeconds)
	}
	if c.PopularLookbackDays <= 0 {
		return fmt.Errorf("POPULAR_LOOKBACK_DAYS must be positive, got %d", c.PopularLookbackDays)
	}
	if !isSupportedLanguage(c.DefaultLanguage) {
		return fmt.Errorf("DEFAULT_LANGUAGE %q is not one of %v", c.DefaultLanguage, SupportedLanguages)
	}
	return nil
}

func isSupportedLanguage(code string) bool {
	for _, lang := range SupportedLanguages {
		if code == lang {
			return true
		}
	}
	return false
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
