package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Config returns a config pointing at a fresh database file in a temp
// directory, with reference fetching turned off.
func Config(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		DBPath:            filepath.Join(dir, "analytics.db"),
		ServerPort:        "0",
		LogLevel:          "debug",
		ImportDir:         dir,
		ImportPattern:     "*.json",
		ImportMaxFileSize: 1 << 20,
		ReferenceAPIURL:   "http://127.0.0.1:0",
		ReferenceCacheTTL: time.Hour,
		ReferenceFetch:    false,
	}
}

// NewDB opens a migrated database for cfg and closes it when the test ends.
func NewDB(t *testing.T, cfg *config.Config) *sql.DB {
	t.Helper()

	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return sqlDB
}
