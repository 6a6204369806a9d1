package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the API server.
type Config struct {
	HTTPAddr         string
	FrontendURL      string
	AlgoliaAppID     string
	AlgoliaSearchKey string
	AlgoliaAdminKey  string
	AlgoliaIndex     string
	CacheTTL         time.Duration
	DatasetDir       string
	AdminSecret      string
	AdminTokenExpiry time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

// Load collects configuration from a .env file (if present) and the
// environment, with defaults matching local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", "localhost:5000"),
		FrontendURL:      getenv("FRONTEND_URL", "http://localhost:5173"),
		AlgoliaAppID:     getenv("ALGOLIA_APP_ID", ""),
		AlgoliaSearchKey: getenv("ALGOLIA_SEARCH_API_KEY", ""),
		AlgoliaAdminKey:  getenv("ALGOLIA_ADMIN_API_KEY", ""),
		AlgoliaIndex:     getenv("ALGOLIA_INDEX", "pc_components"),
		CacheTTL:         durenvs("CACHE_TTL_SECONDS", 300),
		DatasetDir:       getenv("DATASET_DIR", "./datasets/csv"),
		AdminSecret:      getenv("ADMIN_SECRET_KEY", ""),
		AdminTokenExpiry: durenvs("ADMIN_TOKEN_EXPIRY_SECONDS", 24*3600),
	}
}
