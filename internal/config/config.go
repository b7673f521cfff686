// Package config loads the bot configuration from environment variables,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Required environment variables. Everything else has a default.
var requiredEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
}

// Config holds the application configuration.
type Config struct {
	DiscordToken string
	DiscordAppID string

	LogLevel  string
	LogFormat string

	OpsPort int // health/metrics HTTP server

	ItemsPath  string // enriched catalog cache file
	EmojisPath string // optional tier emoji overrides

	// Channel gating, both optional. With OnlyWorkChannels set, price
	// commands outside WorkChannelIDs are ignored. DebugChannelID receives
	// an echo of every handled query when Debug is on.
	OnlyWorkChannels bool
	WorkChannelIDs   []string
	DebugChannelID   string
	Debug            bool

	// API endpoint overrides, empty means production defaults.
	ItemDumpURL string
	PricesURL   string
	HistoryURL  string
}

// Load loads the configuration from environment variables. A .env file is
// honored when present but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	if err := validateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		DiscordAppID: os.Getenv("DISCORD_APP_ID"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		ItemsPath:  getEnv("ITEMS_PATH", "items.json"),
		EmojisPath: getEnv("EMOJIS_PATH", ""),

		OnlyWorkChannels: getEnvBool("ONLY_WORK_CHANNELS", false),
		WorkChannelIDs:   splitList(os.Getenv("WORK_CHANNEL_IDS")),
		DebugChannelID:   os.Getenv("DEBUG_CHANNEL_ID"),
		Debug:            getEnvBool("DEBUG", false),

		ItemDumpURL: os.Getenv("ITEM_DUMP_URL"),
		PricesURL:   os.Getenv("PRICES_URL"),
		HistoryURL:  os.Getenv("HISTORY_URL"),
	}

	portStr := getEnv("OPS_PORT", "8090")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid OPS_PORT value: %w", err)
	}
	cfg.OpsPort = port

	if cfg.OnlyWorkChannels && len(cfg.WorkChannelIDs) == 0 {
		return nil, errors.New("ONLY_WORK_CHANNELS is set but WORK_CHANNEL_IDS is empty")
	}

	return cfg, nil
}

// validateEnv checks that all required environment variables are set.
func validateEnv() error {
	var missing []string
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// splitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
