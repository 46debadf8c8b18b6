package database

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/constants"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// New opens the match store at cfg.DBPath, creating the parent directory
// if needed, and brings the schema up to date.
func New(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	log := logger.With().Str("db_path", cfg.DBPath).Logger()
	log.Info().Msg("opening match store")

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite3", dsn(cfg.DBPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(constants.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(constants.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(constants.DBMaxIdleTime)

	steps := []struct {
		name string
		run  func(*sql.DB, zerolog.Logger) error
	}{
		{"tune store", tune},
		{"migrate schema", migrate},
	}
	for _, step := range steps {
		if err := step.run(sqlDB, log); err != nil {
			log.Error().Err(err).Str("step", step.name).Msg("database setup failed")
			sqlDB.Close()
			return nil, fmt.Errorf("failed to %s: %w", step.name, err)
		}
	}

	log.Info().Msg("match store ready")
	return sqlDB, nil
}

// dsn carries the per-connection settings. foreign_keys and busy_timeout
// only apply to the connection that ran the PRAGMA, so they have to be on
// every pooled connection. Immediate transactions take the write lock at
// BEGIN which serializes concurrent imports of the same match.
func dsn(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", strconv.Itoa(constants.DBBusyTimeoutMS))
	params.Set("_journal_mode", "WAL")
	params.Set("_txlock", "immediate")

	return "file:" + path + "?" + params.Encode()
}

// storePragmas are database wide or harmless to run once at startup.
var storePragmas = [][2]string{
	{"synchronous", "NORMAL"},
	{"cache_size", "-64000"},
	{"temp_store", "MEMORY"},
	{"mmap_size", "268435456"}, // 256MB https://sqlite.org/mmap.html
}

func tune(sqlDB *sql.DB, logger zerolog.Logger) error {
	for _, pragma := range storePragmas {
		if _, err := sqlDB.Exec(fmt.Sprintf("PRAGMA %s = %s", pragma[0], pragma[1])); err != nil {
			return fmt.Errorf("PRAGMA %s: %w", pragma[0], err)
		}
		logger.Debug().Str("pragma", pragma[0]).Str("value", pragma[1]).Msg("pragma applied")
	}
	return nil
}

func migrate(sqlDB *sql.DB, logger zerolog.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info().Int64("schema_version", version).Msg("schema up to date")
	return nil
}
