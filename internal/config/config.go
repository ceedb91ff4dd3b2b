// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimezone is the timezone used to derive "today" when TIMEZONE is unset.
const DefaultTimezone = "Asia/Jakarta"

// Config holds all configuration for the application.
type Config struct {
	TelegramBotToken     string
	DatabaseURL          string
	LogLevel             string
	Timezone             string
	DailyReminderEnabled bool
	ReminderHour         int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}

	cfg.Timezone = DefaultTimezone
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			cfg.Timezone = tz
		}
	}

	cfg.DailyReminderEnabled = os.Getenv("DAILY_REMINDER_ENABLED") == "true"
	cfg.ReminderHour = 20
	if hourStr := os.Getenv("REMINDER_HOUR"); hourStr != "" {
		if h, err := strconv.Atoi(hourStr); err == nil && h >= 0 && h <= 23 {
			cfg.ReminderHour = h
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.TelegramBotToken == "" {
		errs = append(errs, "TELEGRAM_BOT_TOKEN is required")
	}

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Location resolves the configured timezone. The timezone is validated at
// load time, so failure here only happens with a hand-built Config.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
