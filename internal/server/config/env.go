package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, if present; real environment
// variables take precedence over it.
//
// Recognized variables:
//
//	ENDPOINT_ADDR_HTTP       bind address (e.g., ":8080")
//	DATABASE_DSN             SQLite path or postgres:// DSN
//	CATALOG_BASE_URL         catalog API base URL
//	CATALOG_TIMEOUT          duration (e.g., "5s")
//	CATALOG_CACHE_SIZE       integer
//	SECRET_KEY               JWT HMAC secret
//	TOKEN_VALIDITY_DURATION  duration (e.g., "15m")
//	LOG_FORMAT               "json" or "console"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR_HTTP"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("CATALOG_BASE_URL"); v != "" {
		config.CatalogBaseURL = v
	}
	if v := os.Getenv("CATALOG_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.CatalogTimeout = d
		}
	}
	if v := os.Getenv("CATALOG_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.CatalogCacheSize = n
		}
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		config.LogFormat = v
	}
}
