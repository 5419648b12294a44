package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"cleaningrobot/internal/messages"
)

// Config holds the runner's configuration values.
type Config struct {
	Locale      messages.Locale // Language for outcome messages
	MaxSteps    int             // Statement budget per script run
	RenderDelay time.Duration   // Pause after each rendered frame
	ANSI        bool            // Clear the terminal between frames
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Locale:      messages.DefaultLocale,
		MaxSteps:    10000,
		RenderDelay: 200 * time.Millisecond,
		ANSI:        true,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from CLEANER_* environment variables on top of
// Default.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.Locale = messages.Locale(getEnvWithDefault("CLEANER_LOCALE", string(cfg.Locale)))
	if !messages.Supported(cfg.Locale) {
		return cfg, fmt.Errorf("CLEANER_LOCALE: unsupported locale %q", cfg.Locale)
	}

	steps, err := getEnvAsInt("CLEANER_MAX_STEPS", cfg.MaxSteps)
	if err != nil {
		return cfg, err
	}
	if steps <= 0 {
		return cfg, fmt.Errorf("CLEANER_MAX_STEPS must be positive, got %d", steps)
	}
	cfg.MaxSteps = steps

	delay, err := getEnvAsInt("CLEANER_RENDER_DELAY_MS", int(cfg.RenderDelay/time.Millisecond))
	if err != nil {
		return cfg, err
	}
	if delay < 0 {
		return cfg, fmt.Errorf("CLEANER_RENDER_DELAY_MS must be non-negative, got %d", delay)
	}
	cfg.RenderDelay = time.Duration(delay) * time.Millisecond

	if v, ok := os.LookupEnv("CLEANER_ANSI"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("CLEANER_ANSI must be a boolean: %w", err)
		}
		cfg.ANSI = b
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
