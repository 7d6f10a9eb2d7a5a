package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gamecart/internal/flagx"
	"github.com/dmitrijs2005/gamecart/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "5s" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	CatalogBaseURL        string         `json:"catalog_base_url"`
	CatalogTimeout        timex.Duration `json:"catalog_timeout"`
	CatalogCacheSize      int            `json:"catalog_cache_size"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	LogFormat             string         `json:"log_format"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	// only fields present in the file override defaults
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.CatalogBaseURL != "" {
		config.CatalogBaseURL = c.CatalogBaseURL
	}
	if c.CatalogTimeout.Duration != 0 {
		config.CatalogTimeout = time.Duration(c.CatalogTimeout.Duration)
	}
	if c.CatalogCacheSize != 0 {
		config.CatalogCacheSize = c.CatalogCacheSize
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
}
