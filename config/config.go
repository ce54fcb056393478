package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt64 gets an environment variable parsed as int64, falling back on
// absence or parse failure
func GetEnvInt64(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// UploadDir returns the directory where attachment files are stored
func UploadDir() string {
	return GetEnv("UPLOAD_DIR", "uploads")
}

// MaxUploadSize returns the maximum accepted attachment size in bytes
func MaxUploadSize() int64 {
	return GetEnvInt64("MAX_UPLOAD_SIZE", 10*1024*1024)
}
