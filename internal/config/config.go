// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Env selects the runtime environment ("development" or "production").
	Env string

	// DataDir is the directory holding the database file.
	DataDir string

	// DatabaseFile is the name of the SQLite file inside DataDir.
	DatabaseFile string
}

// Load loads configuration from a .env file (if present) and environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Env:          getEnv("ACCRUE_ENV", "development"),
		DataDir:      getEnv("ACCRUE_DATA_DIR", defaultDataDir()),
		DatabaseFile: getEnv("ACCRUE_DB_FILE", "accrue.sqlite"),
	}, nil
}

// DatabasePath returns the full path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// defaultDataDir resolves the per-user application data directory.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(base, "accrue")
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
