// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	// Telegram
	TelegramBotToken string
	TelegramAPIURL   string
	PollTimeout      time.Duration

	// Dexscreener
	DexscreenerBaseURL string
	ChainID            string
	SearchTerms        []string
	PairsPerTerm       int
	RequestTimeout     time.Duration

	// Delivery
	SendDelay  time.Duration
	MaxResults int

	// Logging
	LogLevel string
}

// Load reads configuration from path and the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		fmt.Printf("⚠️  Config file not found, using environment variables\n")
	}

	cfg := &Config{
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAPIURL:   getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		PollTimeout:      getEnvDuration("POLL_TIMEOUT", 30*time.Second),

		DexscreenerBaseURL: getEnv("DEXSCREENER_BASE_URL", "https://api.dexscreener.com"),
		ChainID:            getEnv("CHAIN_ID", "solana"),
		SearchTerms:        splitCSV(getEnv("SEARCH_TERMS", "SOL")),
		PairsPerTerm:       getEnvInt("PAIRS_PER_TERM", 20),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),

		SendDelay:  getEnvDuration("SEND_DELAY", 500*time.Millisecond),
		MaxResults: getEnvInt("MAX_RESULTS", 10),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks startup-fatal conditions. A missing bot token kills the
// process here rather than failing every request later.
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if len(c.SearchTerms) == 0 {
		return fmt.Errorf("SEARCH_TERMS is empty")
	}
	if c.PairsPerTerm <= 0 {
		return fmt.Errorf("PAIRS_PER_TERM must be positive, got %d", c.PairsPerTerm)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("MAX_RESULTS must be positive, got %d", c.MaxResults)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// splitCSV parses a comma-separated list, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
