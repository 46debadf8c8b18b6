package config_test

import (
	"testing"
	"time"
	"valorant-analytics/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_PATH", "SERVER_PORT", "IMPORT_DIR", "IMPORT_PATTERN", "IMPORT_MAX_FILE_SIZE", "REFERENCE_CACHE_TTL", "REFERENCE_FETCH"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load(zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "analytics.db", cfg.DBPath)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, "*.json", cfg.ImportPattern)
	require.Equal(t, int64(64<<20), cfg.ImportMaxFileSize)
	require.Equal(t, time.Hour, cfg.ReferenceCacheTTL)
	require.True(t, cfg.ReferenceFetch)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("IMPORT_DIR", "/data/dumps")
	t.Setenv("IMPORT_MAX_FILE_SIZE", "1024")
	t.Setenv("REFERENCE_CACHE_TTL", "15m")
	t.Setenv("REFERENCE_FETCH", "false")

	cfg, err := config.Load(zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, "/data/dumps", cfg.ImportDir)
	require.Equal(t, int64(1024), cfg.ImportMaxFileSize)
	require.Equal(t, 15*time.Minute, cfg.ReferenceCacheTTL)
	require.False(t, cfg.ReferenceFetch)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"IMPORT_MAX_FILE_SIZE": "huge",
		"REFERENCE_CACHE_TTL":  "forever",
		"REFERENCE_FETCH":      "maybe",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := config.Load(zerolog.Nop())
			require.ErrorContains(t, err, key)
		})
	}

	t.Run("non positive size", func(t *testing.T) {
		t.Setenv("IMPORT_MAX_FILE_SIZE", "0")
		_, err := config.Load(zerolog.Nop())
		require.Error(t, err)
	})
}
