package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"photobooking/internal/pkg/validator"
)

const (
	defaultSessionSecret = "change-me-session-secret"
	defaultBucket        = "photobooking-assets"
	defaultRegion        = "ap-south-1"
	defaultCountryCode   = "+91"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV" validate:"required"`
	HTTPAddr string `mapstructure:"HTTP_ADDR" validate:"required"`

	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required"`
	CatalogPath string `mapstructure:"CATALOG_PATH"`

	SessionSecret string        `mapstructure:"SESSION_SECRET" validate:"required"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL" validate:"gt=0"`

	PhotoBucket    string        `mapstructure:"PHOTO_BUCKET" validate:"required"`
	AWSRegion      string        `mapstructure:"AWS_REGION" validate:"required"`
	SignedURLTTL   time.Duration `mapstructure:"SIGNED_URL_TTL" validate:"gt=0"`
	MailFrom       string        `mapstructure:"MAIL_FROM" validate:"omitempty,email"`
	SMSCountryCode string        `mapstructure:"SMS_COUNTRY_CODE" validate:"required,startswith=+"`
	SiteURL        string        `mapstructure:"SITE_URL"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB" validate:"gte=0"`
	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL" validate:"gte=0"`

	OpsToken        string `mapstructure:"OPS_TOKEN"`
	NotifyOnBooking bool   `mapstructure:"NOTIFY_ON_BOOKING"`
	RateLimitPerMin int    `mapstructure:"RATE_LIMIT_PER_MIN" validate:"gte=0"`
}

// Load reads .env (if present) and the process environment into a validated
// Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_ADDR", ":5000")
	v.SetDefault("DATABASE_URL", "photobooking.db")
	v.SetDefault("CATALOG_PATH", "configs/catalog.yaml")
	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("PHOTO_BUCKET", defaultBucket)
	v.SetDefault("AWS_REGION", defaultRegion)
	v.SetDefault("SIGNED_URL_TTL", "1h")
	v.SetDefault("MAIL_FROM", "")
	v.SetDefault("SMS_COUNTRY_CODE", defaultCountryCode)
	v.SetDefault("SITE_URL", "http://localhost:5000")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
	v.SetDefault("OPS_TOKEN", "")
	v.SetDefault("NOTIFY_ON_BOOKING", false)
	v.SetDefault("RATE_LIMIT_PER_MIN", 60)
}

func validateConfig(cfg *Config) error {
	if errs := validator.Validate(cfg); errs != nil {
		fields := make([]string, 0, len(errs))
		for f, tag := range errs {
			fields = append(fields, f+"="+tag)
		}
		sort.Strings(fields)
		return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
	}

	if cfg.IsProdLike() {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if cfg.MailFrom == "" {
			return fmt.Errorf("in prod/release MAIL_FROM must be set")
		}
	}

	return nil
}

// IsProdLike reports whether the app runs in a production-like environment.
func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
