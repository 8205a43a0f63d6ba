package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Status evaluation config
const STATUS_POLL_INTERVAL_SECONDS = 60

// The venue timezone is a fixed UTC+1, no daylight saving, ever.
const TIMEZONE_OFFSET_HOURS = 1

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Content API
const CONTENT_ENDPOINT_BASE_V1 = "https://content.ohstatus.app/api/v1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUE_CATALOG_RESOURCE = "venue_catalog.json"

// LoadEnv loads a .env file if one is present next to the binary.
// Missing files are fine; the consts above are the defaults.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using defaults")
	}
}

// Env returns the application environment, defaulting to prod.
func Env() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "prod"
}

// RedisAddress returns the Redis address, honoring the REDIS_ADDRESS override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// ContentAPIKey returns the content source API key, empty when unset.
func ContentAPIKey() string {
	return os.Getenv("CONTENT_API_KEY")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
