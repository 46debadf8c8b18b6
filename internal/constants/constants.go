package constants

import "time"

const (
	ReferenceCacheTTL = time.Hour
	// ReferenceFetchTTL is the retry delay after a failed reference refresh.
	ReferenceFetchTTL = 5 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	ImportTimeout      = 2 * time.Minute
	ShutdownTimeout    = 5 * time.Second
)

// SQLite allows a single writer. The pool is sized for concurrent readers
// and writers queue on busy_timeout.
const (
	DBMaxOpenConns    = 16
	DBMaxIdleConns    = 4
	DBConnMaxLifetime = time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBusyTimeoutMS   = 5000
)

const (
	SearchSuggestionLimit = 10
	ImportLogLimit        = 50
	MaxUploadBytes        = 32 << 20
)
