package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, "gamecart.db", cfg.DatabaseDSN)
	assert.Equal(t, "https://www.cheapshark.com/api/1.0", cfg.CatalogBaseURL)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 256, cfg.CatalogCacheSize)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR_HTTP", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/cart")
	t.Setenv("CATALOG_TIMEOUT", "2s")
	t.Setenv("CATALOG_CACHE_SIZE", "16")
	t.Setenv("LOG_FORMAT", "console")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@localhost:5432/cart", cfg.DatabaseDSN)
	assert.Equal(t, 2*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 16, cfg.CatalogCacheSize)
	assert.Equal(t, "console", cfg.LogFormat)
	// untouched fields keep defaults
	assert.Equal(t, "https://www.cheapshark.com/api/1.0", cfg.CatalogBaseURL)
}

func TestParseEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("CATALOG_TIMEOUT", "not-a-duration")
	t.Setenv("CATALOG_CACHE_SIZE", "many")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 256, cfg.CatalogCacheSize)
}

func TestParseJson_PartialFileOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	content := `{"endpoint_addr_http": ":7070", "catalog_timeout": "3s"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	assert.Equal(t, 3*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, "gamecart.db", cfg.DatabaseDSN)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-a", ":6060", "-d", "other.db", "-t", "30"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":6060", cfg.EndpointAddrHTTP)
	assert.Equal(t, "other.db", cfg.DatabaseDSN)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
}
