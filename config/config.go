package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
	Scene     SceneConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TrustedProxies []string `mapstructure:"trusted_proxies"` // empty: X-Forwarded-For is ignored
}

// SessionConfig holds customizer session configuration
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// PricingConfig holds price presentation configuration
type PricingConfig struct {
	Currency string `mapstructure:"currency"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP      int `mapstructure:"per_ip"` // requests per minute
	Burst      int `mapstructure:"burst"`
	MaxClients int `mapstructure:"max_clients"` // buckets kept before the least recent is evicted
}

// SceneConfig holds scene builder configuration
type SceneConfig struct {
	Seed int64 `mapstructure:"seed"` // 0 scatters decorations differently on every build
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cafevirtuel/")

	// Environment variable settings
	v.SetEnvPrefix("CAFEVIRTUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func loadEnvFile() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.trusted_proxies", []string{})

	// Session defaults
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.cleanup_interval", "10m")

	// Pricing defaults
	v.SetDefault("pricing.currency", "USD")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 300)
	v.SetDefault("ratelimit.burst", 30)
	v.SetDefault("ratelimit.max_clients", 10000)

	// Scene defaults
	v.SetDefault("scene.seed", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("environment must be 'development', 'production' or 'test', got: %s", config.Server.Environment)
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got: %s", config.Session.TTL)
	}

	if len(config.Pricing.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code, got: %q", config.Pricing.Currency)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 || config.RateLimit.MaxClients < 0 {
		return fmt.Errorf("rate limits cannot be negative")
	}

	for _, proxy := range config.Server.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("trusted proxy must be an IP or CIDR, got: %q", proxy)
		}
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got: %s", config.Log.Level)
	}

	return nil
}
