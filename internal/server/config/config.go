// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the game cart server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - DatabaseDSN: SQLite file path, or a postgres:// DSN to use PostgreSQL.
//   - CatalogBaseURL: base URL of the CheapShark pricing API.
//   - CatalogTimeout: per-request timeout for catalog calls.
//   - CatalogCacheSize: max entries in the catalog response cache.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: session token lifetime.
//   - LogFormat: "json" (slog) or "console" (zerolog).
type Config struct {
	EndpointAddrHTTP      string
	DatabaseDSN           string
	CatalogBaseURL        string
	CatalogTimeout        time.Duration
	CatalogCacheSize      int
	SecretKey             string
	TokenValidityDuration time.Duration
	LogFormat             string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = "gamecart.db"
	c.CatalogBaseURL = "https://www.cheapshark.com/api/1.0"
	c.CatalogTimeout = 5 * time.Second
	c.CatalogCacheSize = 256
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 15 * time.Minute
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
