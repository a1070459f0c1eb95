package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"obsidion/database"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	OwnerID      int64 // user that kill commands can never target

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Bot configuration
	DefaultPrefix string
	DefaultLocale string
	ResourceDir   string        // optional override for the fun response pools
	WizardTimeout time.Duration // per-step timeout for setup wizards
	CommandRate   float64       // commands per second per user

	// Status server, empty disables it
	StatusAddr string

	// NATS, empty disables news delivery and event forwarding
	NATSServers string

	// Mojang profile API
	MojangAPIURL string

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		DefaultPrefix: getEnvWithDefault("DEFAULT_PREFIX", "."),
		DefaultLocale: getEnvWithDefault("DEFAULT_LOCALE", "en-US"),
		ResourceDir:   os.Getenv("RESOURCE_DIR"),
		WizardTimeout: 15 * time.Second,
		CommandRate:   1,

		StatusAddr:   getEnvWithDefault("STATUS_ADDR", ":8080"),
		NATSServers:  os.Getenv("NATS_SERVERS"),
		MojangAPIURL: getEnvWithDefault("MOJANG_API_URL", "https://api.mojang.com"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	// STATUS_ADDR may be set to an empty value on purpose
	if addr, ok := os.LookupEnv("STATUS_ADDR"); ok {
		config.StatusAddr = strings.TrimSpace(addr)
	}

	if owner := os.Getenv("OWNER_ID"); owner != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(owner), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OWNER_ID %q: %w", owner, err)
		}
		config.OwnerID = id
	}
	if timeout := os.Getenv("WIZARD_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid WIZARD_TIMEOUT %q", timeout)
		}
		config.WizardTimeout = d
	}
	if rate := os.Getenv("COMMAND_RATE"); rate != "" {
		r, err := strconv.ParseFloat(rate, 64)
		if err != nil || r <= 0 {
			return nil, fmt.Errorf("invalid COMMAND_RATE %q", rate)
		}
		config.CommandRate = r
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if l := len([]rune(config.DefaultPrefix)); l == 0 || l > 200 {
		return nil, fmt.Errorf("DEFAULT_PREFIX must be between 1 and 200 characters")
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:  "test-token",
		DefaultPrefix: ".",
		DefaultLocale: "en-US",
		WizardTimeout: 50 * time.Millisecond,
		CommandRate:   1000,
		MojangAPIURL:  "http://localhost",
		LogLevel:      "debug",
		Environment:   "test",
	}
}
