package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Feedback FeedbackConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// FeedbackConfig describes the API the form posts to
type FeedbackConfig struct {
	APIURL            string
	ConfirmationRoute string
	ClientTimeout     time.Duration
	MockAPIEnabled    bool
	CacheTTL          time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled reports whether a redis host was configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads .env (when present) and the environment. Called once at startup.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "customer-feedback")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CONFIRMATION_ROUTE", "/feedback")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	v.SetDefault("MOCK_API_ENABLED", false)
	v.SetDefault("CACHE_TTL", "30s")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Feedback: FeedbackConfig{
			APIURL:            v.GetString("FEEDBACK_API_URL"),
			ConfirmationRoute: v.GetString("CONFIRMATION_ROUTE"),
			ClientTimeout:     v.GetDuration("HTTP_CLIENT_TIMEOUT"),
			MockAPIEnabled:    v.GetBool("MOCK_API_ENABLED"),
			CacheTTL:          v.GetDuration("CACHE_TTL"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Feedback.APIURL == "" {
		return fmt.Errorf("FEEDBACK_API_URL is required")
	}
	if c.Feedback.ConfirmationRoute == "" {
		return fmt.Errorf("CONFIRMATION_ROUTE is required")
	}
	if c.Feedback.ClientTimeout <= 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must be positive")
	}
	if c.Feedback.MockAPIEnabled && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required when MOCK_API_ENABLED is set")
	}
	return nil
}
