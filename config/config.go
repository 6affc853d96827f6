package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string // when set, Postgres is used instead of the SQLite file
	SQLitePath  string
	UploadDir   string
	Environment string
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file is loaded first if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "data/storefront.db"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
