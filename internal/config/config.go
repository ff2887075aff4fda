package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`

	SiteURL        string `mapstructure:"SITE_URL"`
	SiteName       string `mapstructure:"SITE_NAME"`
	CityName       string `mapstructure:"CITY_NAME"`
	StorageBaseURL string `mapstructure:"STORAGE_BASE_URL"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	SMTPHost          string `mapstructure:"SMTP_HOST"`
	SMTPPort          int    `mapstructure:"SMTP_PORT"`
	SMTPUsername      string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword      string `mapstructure:"SMTP_PASSWORD"`
	EmailFrom         string `mapstructure:"EMAIL_FROM"`
	NotificationEmail string `mapstructure:"NOTIFICATION_EMAIL"`

	// StrictSlugAmbiguity makes the resolver fail instead of preferring
	// the location when a segment names both a location and a specialization.
	StrictSlugAmbiguity bool `mapstructure:"STRICT_SLUG_AMBIGUITY"`
}

// LoadConfig reads configuration from app.env in path, an optional .env
// file in the working directory, and environment variables.
func LoadConfig(path string) (Config, error) {
	// .env is a developer convenience for secrets and is not required.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SITE_URL", "https://londondoggroomers.com")
	v.SetDefault("SITE_NAME", "London Dog Groomers")
	v.SetDefault("CITY_NAME", "London")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("EMAIL_FROM", "no-reply@londondoggroomers.com")
	v.SetDefault("STRICT_SLUG_AMBIGUITY", false)

	// Every key must be known to viper for AutomaticEnv to reach Unmarshal.
	for _, key := range []string{"DB_SOURCE", "STORAGE_BASE_URL", "REDIS_ADDR", "REDIS_PASSWORD",
		"SMTP_HOST", "SMTP_USERNAME", "SMTP_PASSWORD", "NOTIFICATION_EMAIL"} {
		v.SetDefault(key, "")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if config.DBSource == "" {
		return Config{}, fmt.Errorf("config: DB_SOURCE is required")
	}

	return config, nil
}

// EmailEnabled reports whether enough SMTP settings are present to send notifications.
func (c Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.NotificationEmail != ""
}
