package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"env": "development", "version": "2.0.0"},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "45s"},
		"security": {
			"cors_allowed_origins": ["http://x.test"],
			"rate_limit_max": 5,
			"rate_limit_window": "2h",
			"rate_limit_message": "nope",
			"body_limit": 100,
			"hpp_whitelist": ["tag"]
		},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://db"}},
		"query": {"default_page": 1, "default_limit": 50, "default_sort": "-name", "tie_break_field": "id", "excluded_field": "version"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, App{Env: "development", Version: "2.0.0"}, cfg.App)
	assert.Equal(t, Server{HTTPAddress: "0.0.0.0:8080", RequestTimeout: 45 * time.Second}, cfg.Server)
	assert.Equal(t, 2*time.Hour, cfg.Security.RateLimitWindow)
	assert.Equal(t, []string{"tag"}, cfg.Security.HPPWhitelist)
	assert.Equal(t, DB{Driver: "pgx", DSN: "postgres://db"}, cfg.Storage.DB)
	assert.Equal(t, 50, cfg.Query.DefaultLimit)
	assert.Equal(t, "-name", cfg.Query.DefaultSort)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := parseJSON(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "error reading a json file")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))
	_, err = parseJSON(broken)
	assert.ErrorContains(t, err, "error decoding json configs")

	badDuration := filepath.Join(dir, "duration.json")
	require.NoError(t, os.WriteFile(badDuration, []byte(`{"server":{"request_timeout":"soon"}}`), 0o600))
	_, err = parseJSON(badDuration)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
