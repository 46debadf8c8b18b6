package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	"valorant-analytics/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	ImportDir         string
	ImportPattern     string
	ImportMaxFileSize int64

	ReferenceAPIURL   string
	ReferenceCacheTTL time.Duration
	ReferenceFetch    bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	maxFileSize, err := getEnvInt64("IMPORT_MAX_FILE_SIZE", 64<<20)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("REFERENCE_CACHE_TTL", constants.ReferenceCacheTTL)
	if err != nil {
		return nil, err
	}
	fetch, err := getEnvBool("REFERENCE_FETCH", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:            getEnv("DB_PATH", "analytics.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ImportDir:         getEnv("IMPORT_DIR", "matches"),
		ImportPattern:     getEnv("IMPORT_PATTERN", "*.json"),
		ImportMaxFileSize: maxFileSize,
		ReferenceAPIURL:   getEnv("REFERENCE_API_URL", "https://valorant-api.com"),
		ReferenceCacheTTL: cacheTTL,
		ReferenceFetch:    fetch,
	}

	if cfg.ImportMaxFileSize <= 0 {
		return nil, fmt.Errorf("IMPORT_MAX_FILE_SIZE must be positive")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("import_dir", cfg.ImportDir).
		Str("import_pattern", cfg.ImportPattern).
		Dur("reference_cache_ttl", cfg.ReferenceCacheTTL).
		Bool("reference_fetch", cfg.ReferenceFetch).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

var Module = fx.Provide(Load)
