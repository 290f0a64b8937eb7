package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Football FootballConfig `yaml:"football"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Enricher EnricherConfig `yaml:"enricher"`
	Telegram TelegramConfig `yaml:"telegram"`
	Chat     ChatConfig     `yaml:"chat"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // JSON log file, rotated; empty disables
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// FootballConfig configures the API-Football client.
type FootballConfig struct {
	APIKey     string        `yaml:"api_key"`
	BaseURL    string        `yaml:"base_url"`
	Timezone   string        `yaml:"timezone"` // IANA zone for kickoff times and "today"
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type EnricherConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"` // whole pipeline, per message
	JournalTimeout time.Duration `yaml:"journal_timeout"`
}

type TelegramConfig struct {
	BotToken     string  `yaml:"bot_token"`
	AllowedChats []int64 `yaml:"allowed_chats"` // empty allows everyone
	Debug        bool    `yaml:"debug"`
}

// ChatConfig configures the OpenAI-compatible completion endpoint the bot
// forwards enriched prompts to.
type ChatConfig struct {
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	Temperature float64       `yaml:"temperature"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.ApplyEnv()
	config.applyDefaults()
	return &config, nil
}

// Default returns a config with defaults only, for running without a file.
func Default() *Config {
	var config Config
	config.ApplyEnv()
	config.applyDefaults()
	return &config
}

// ApplyEnv overrides secrets and endpoints from the environment.
func (c *Config) ApplyEnv() {
	setString(&c.Football.APIKey, "APIFOOTBALL_KEY")
	setString(&c.Football.BaseURL, "APIFOOTBALL_URL")
	setString(&c.Football.Timezone, "APIFOOTBALL_TIMEZONE")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Postgres.DSN, "POSTGRES_DSN")
	setString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Chat.APIKey, "CHAT_API_KEY")
	setString(&c.Chat.BaseURL, "CHAT_URL")
	setString(&c.Logging.Level, "LOG_LEVEL")
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Redis.Enabled = b
		}
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = 100
	}
	if c.Logging.MaxBackups <= 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays <= 0 {
		c.Logging.MaxAgeDays = 7
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Football.BaseURL == "" {
		c.Football.BaseURL = "https://v3.football.api-sports.io"
	}
	if c.Football.Timezone == "" {
		c.Football.Timezone = "UTC"
	}
	if c.Football.Timeout <= 0 {
		c.Football.Timeout = 15 * time.Second
	}
	if c.Football.MaxRetries < 0 {
		c.Football.MaxRetries = 0
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "betbrief:"
	}
	if c.Enricher.RequestTimeout <= 0 {
		c.Enricher.RequestTimeout = 30 * time.Second
	}
	if c.Enricher.JournalTimeout <= 0 {
		c.Enricher.JournalTimeout = 5 * time.Second
	}
	if c.Chat.BaseURL == "" {
		c.Chat.BaseURL = "https://api.openai.com/v1"
	}
	if c.Chat.Model == "" {
		c.Chat.Model = "gpt-4o-mini"
	}
	if c.Chat.Timeout <= 0 {
		c.Chat.Timeout = 60 * time.Second
	}
	if c.Chat.MaxRetries <= 0 {
		c.Chat.MaxRetries = 3
	}
}

// Location resolves football.timezone, falling back to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Football.Timezone == "" || c.Football.Timezone == "UTC" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Football.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid football.timezone %q: %w", c.Football.Timezone, err)
	}
	return loc, nil
}
