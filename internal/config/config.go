package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Content    ContentConfig
	Discord    DiscordConfig
	Redis      RedisConfig
	Generation GenerationConfig

	LogLevel string `env:"CAIRN_LOG_LEVEL" envDefault:"info"`
}

// ContentConfig selects where decks are loaded from
type ContentConfig struct {
	// Dir overrides the embedded decks when set
	Dir string `env:"CAIRN_CONTENT_DIR"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Enabled reports whether announcements should go to Discord
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL selects Redis persistence; empty keeps actors in memory
	URL string `env:"REDIS_URL"`
}

// GenerationConfig tunes character generation
type GenerationConfig struct {
	// Seed makes every roll reproducible; 0 draws a fresh seed
	Seed        int64  `env:"CAIRN_SEED"`
	OwnerFormat string `env:"CAIRN_OWNER_FORMAT" envDefault:"{owner}'s {actor}"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks fields that depend on each other
func (c *Config) Validate() error {
	if c.Discord.Enabled() && c.Discord.ChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}
	if !strings.Contains(c.Generation.OwnerFormat, "{actor}") {
		return fmt.Errorf("CAIRN_OWNER_FORMAT must contain {actor}, got %q", c.Generation.OwnerFormat)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("CAIRN_LOG_LEVEL: %w", err)
	}
	return level, nil
}
