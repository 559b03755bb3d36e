package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	OWM       OWMConfig       `mapstructure:"owm"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	History   HistoryConfig   `mapstructure:"history"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Marquee   MarqueeConfig   `mapstructure:"marquee"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdowntimeout"`
}

// OWMConfig holds the OpenWeatherMap client configuration
type OWMConfig struct {
	APIKey  string        `mapstructure:"apikey"`
	BaseURL string        `mapstructure:"baseurl"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig throttles outbound API calls
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// HistoryConfig selects the search history backend
type HistoryConfig struct {
	Backend string `mapstructure:"backend"` // memory, redis
}

// RedisConfig is used when the history backend is redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// MarqueeConfig controls the rotating city display
type MarqueeConfig struct {
	Cities   []string      `mapstructure:"cities"`
	Initial  string        `mapstructure:"initial"`
	Interval time.Duration `mapstructure:"interval"`
}

// Load reads configuration from .env, an optional YAML file and environment
// variables prefixed WEATHER_REPORT_ (WEATHER_REPORT_OWM_APIKEY, ...).
// An empty path searches for config.yaml in the working directory and ./config.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix("WEATHER_REPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keep the variable name used by earlier deployments working
	if err := v.BindEnv("owm.apikey", "WEATHER_REPORT_OWM_APIKEY", "OPENWEATHERMAP_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("owm.apikey", "")
	v.SetDefault("owm.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("owm.timeout", 10*time.Second)
	// OpenWeatherMap free tier allows 60 calls/minute
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("history.backend", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key", "weather:history")
	v.SetDefault("marquee.cities", []string{"New York", "Hyderabad", "London", "Sydney", "Pennsylvania", "Tokyo", "Bengaluru"})
	v.SetDefault("marquee.initial", "Paris")
	v.SetDefault("marquee.interval", time.Second)
}

func (c *Config) normalize() {
	cities := c.Marquee.Cities[:0]
	for _, city := range c.Marquee.Cities {
		if city = strings.TrimSpace(city); city != "" {
			cities = append(cities, city)
		}
	}
	c.Marquee.Cities = cities
	c.History.Backend = strings.ToLower(strings.TrimSpace(c.History.Backend))
}

// Validate checks values that have no usable fallback
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.History.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown history backend %q", c.History.Backend)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit needs positive rps and burst, got %v/%d", c.RateLimit.RPS, c.RateLimit.Burst)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
