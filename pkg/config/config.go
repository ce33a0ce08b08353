package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"WigLens/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Cache struct {
		Type string        `yaml:"type"` // memory or layered
		TTL  time.Duration `yaml:"ttl"`
		Redis struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Market struct {
		Source      string        `yaml:"source"` // simulated or feed
		FeedURL     string        `yaml:"feed_url"`
		FeedTimeout time.Duration `yaml:"feed_timeout"`
		DefaultDays int           `yaml:"default_days"`
		Symbols     []string      `yaml:"symbols"`
	} `yaml:"market"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("MARKET_SOURCE"); v != "" {
		c.Market.Source = v
	}
	if v := os.Getenv("DEFAULT_DAYS"); v != "" {
		c.Market.DefaultDays = util.ParseIntDefault(v, c.Market.DefaultDays)
	}
	if v := os.Getenv("FEED_URL"); v != "" {
		c.Market.FeedURL = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Market.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Cache.Type == "" {
		c.Cache.Type = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 24 * time.Hour
	}
	if c.Market.Source == "" {
		c.Market.Source = "simulated"
	}
	if c.Market.DefaultDays == 0 {
		c.Market.DefaultDays = 365
	}
	if c.Market.FeedTimeout == 0 {
		c.Market.FeedTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Market.Source != "simulated" && c.Market.Source != "feed" {
		return fmt.Errorf("market.source must be 'simulated' or 'feed', got '%s'", c.Market.Source)
	}
	if c.Market.Source == "feed" && c.Market.FeedURL == "" {
		return fmt.Errorf("market.feed_url is required when market.source is 'feed'")
	}
	if c.Cache.Type != "memory" && c.Cache.Type != "layered" {
		return fmt.Errorf("cache.type must be 'memory' or 'layered', got '%s'", c.Cache.Type)
	}
	if c.Cache.Type == "layered" && c.Cache.Redis.Host == "" {
		return fmt.Errorf("cache.redis.host is required when cache.type is 'layered'")
	}
	if c.Market.DefaultDays < 0 {
		return fmt.Errorf("market.default_days must be positive")
	}
	return nil
}
