package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SheetURL        string
	GoogleSheetsID  string
	SheetGID        string
	Port            string
	PageTitle       string
	CacheDuration   time.Duration
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
	DiscordToken    string
	CommandPrefix   string
	LogLevel        string
}

func Load() (*Config, error) {
	return &Config{
		SheetURL:        os.Getenv("SHEET_URL"),
		GoogleSheetsID:  os.Getenv("GOOGLE_SHEETS_ID"),
		SheetGID:        getEnvOrDefault("SHEET_GID", "0"),
		Port:            getEnvOrDefault("PORT", "8080"),
		PageTitle:       getEnvOrDefault("PAGE_TITLE", "Links"),
		CacheDuration:   getDurationOrDefault("CACHE_DURATION_MINUTES", time.Minute, 5*time.Minute),
		RefreshInterval: getDurationOrDefault("REFRESH_INTERVAL_MINUTES", time.Minute, 0),
		FetchTimeout:    getDurationOrDefault("FETCH_TIMEOUT_SECONDS", time.Second, 30*time.Second),
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		CommandPrefix:   getEnvOrDefault("COMMAND_PREFIX", "!"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

// Validate checks that a data source is configured
func (c *Config) Validate() error {
	var errs []error
	if c.SheetURL == "" && c.GoogleSheetsID == "" {
		errs = append(errs, errors.New("SHEET_URL or GOOGLE_SHEETS_ID is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.CacheDuration <= 0 {
		errs = append(errs, errors.New("CACHE_DURATION_MINUTES must be greater than 0"))
	}
	return errors.Join(errs...)
}

// DiscordEnabled reports whether the Discord bot should be started
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, unit, defaultValue time.Duration) time.Duration {
	if d := os.Getenv(key); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n >= 0 {
			return time.Duration(n) * unit
		}
	}
	return defaultValue
}
