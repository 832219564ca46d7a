package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayanxn/film-tui/internal/paging"
	"github.com/rayanxn/film-tui/internal/swapi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, swapi.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, paging.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile_ReadsValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{
  "endpoint": "http://localhost:4000/graphql",
  "page_size": 5,
  "cache_size": 8,
  "request_timeout": "10s",
  "log_file": "",
  "log_level": "debug"
}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Endpoint:       "http://localhost:4000/graphql",
		PageSize:       5,
		CacheSize:      8,
		RequestTimeout: 10 * time.Second,
		LogFile:        "",
		LogLevel:       "debug",
	}, cfg)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero page size", body: `{"page_size": 0}`},
		{name: "zero cache size", body: `{"cache_size": 0}`},
		{name: "negative timeout", body: `{"request_timeout": "-1s"}`},
		{name: "malformed json", body: `{"page_size": `},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFile(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("FILM_TUI_PAGE_SIZE", "7")
	t.Setenv("FILM_TUI_ENDPOINT", "http://env.example/graphql")

	cfg, err := LoadFile(writeConfig(t, `{"page_size": 5}`))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.PageSize)
	assert.Equal(t, "http://env.example/graphql", cfg.Endpoint)
}
