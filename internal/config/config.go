package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Store     StoreConfig
	Downloads DownloadConfig
	Welcome   WelcomeConfig
}

type StoreConfig struct {
	Backend string
	DataDir string
}

type DownloadConfig struct {
	Dir string
}

type WelcomeConfig struct {
	Delay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	delayMs, err := strconv.Atoi(getEnv("WELCOME_DELAY_MS", "1500"))
	if err != nil {
		return nil, fmt.Errorf("invalid WELCOME_DELAY_MS: %w", err)
	}

	cfg := &Config{
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", "badger"),
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		Downloads: DownloadConfig{
			Dir: getEnv("DOWNLOAD_DIR", "./descargas"),
		},
		Welcome: WelcomeConfig{
			Delay: time.Duration(delayMs) * time.Millisecond,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "badger", "memory":
	default:
		return fmt.Errorf("STORE_BACKEND must be badger or memory, got %q", c.Store.Backend)
	}
	if c.Store.Backend == "badger" && c.Store.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required for the badger backend")
	}
	if c.Downloads.Dir == "" {
		return fmt.Errorf("DOWNLOAD_DIR is required")
	}
	if c.Welcome.Delay < 0 {
		return fmt.Errorf("WELCOME_DELAY_MS must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
