package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `json:"server"`

	// Document store configuration
	Store StoreConfig `json:"store"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port         string        `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// StoreConfig holds document store configuration. Endpoint, Key,
// Database and Container are all required; there are no defaults.
type StoreConfig struct {
	Endpoint  string `json:"endpoint"`
	Key       string `json:"-"`
	Database  string `json:"database"`
	Container string `json:"container"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level        string `json:"level"`
	Format       string `json:"format"` // json or text
	Output       string `json:"output"` // stdout or stderr
	EnableCaller bool   `json:"enable_caller"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	if err := godotenv.Load(); err != nil {
		// Silently ignore .env file loading errors
		// This allows the application to work with environment variables set directly
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("IDLE_TIMEOUT", 120*time.Second),
		},
		Store: StoreConfig{
			Endpoint:  os.Getenv("STORE_ENDPOINT"),
			Key:       os.Getenv("STORE_KEY"),
			Database:  os.Getenv("STORE_DATABASE"),
			Container: os.Getenv("STORE_CONTAINER"),
		},
		Logging: LoggingConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			Format:       getEnv("LOG_FORMAT", "text"),
			Output:       getEnv("LOG_OUTPUT", "stdout"),
			EnableCaller: getBool("LOG_ENABLE_CALLER", false),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Endpoint == "" {
		return fmt.Errorf("STORE_ENDPOINT is required")
	}
	if c.Store.Key == "" {
		return fmt.Errorf("STORE_KEY is required")
	}
	if c.Store.Database == "" {
		return fmt.Errorf("STORE_DATABASE is required")
	}
	if c.Store.Container == "" {
		return fmt.Errorf("STORE_CONTAINER is required")
	}
	if _, err := url.Parse(c.Store.Endpoint); err != nil {
		return fmt.Errorf("invalid STORE_ENDPOINT: %w", err)
	}
	return nil
}

// GetStoreURI returns the document store connection URI. The access
// key is spliced in as the password; the account name is taken from
// the first label of the endpoint host, the convention managed
// Mongo-compatible stores use for their connection strings.
func (c *Config) GetStoreURI() string {
	u, err := url.Parse(c.Store.Endpoint)
	if err != nil || u.Host == "" {
		return c.Store.Endpoint
	}

	account := u.Host
	if i := strings.IndexByte(account, '.'); i > 0 {
		account = account[:i]
	}
	if i := strings.IndexByte(account, ':'); i > 0 {
		account = account[:i]
	}

	u.User = url.UserPassword(account, c.Store.Key)
	return u.String()
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if value == "1" || value == "true" || value == "TRUE" {
		return true
	}
	if value == "0" || value == "false" || value == "FALSE" {
		return false
	}
	log.Fatalf("invalid %s: %q (expected true/false or 1/0)", key, value)
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return duration
}
