package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type ImportLogRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewImportLogRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ImportLogRepository {
	return &ImportLogRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Record appends entries to the import log. Entries without an id get a
// nanoid, entries without a timestamp get the current time.
func (r *ImportLogRepository) Record(ctx context.Context, entries ...domain.ImportLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	for _, entry := range entries {
		id := entry.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		err := qtx.InsertImportLog(ctx, db.InsertImportLogParams{
			ID:        id,
			MatchID:   entry.MatchID,
			Source:    entry.Source,
			Policy:    entry.Policy,
			TeamID:    entry.TeamID,
			Status:    string(entry.Status),
			Detail:    entry.Detail,
			CreatedAt: createdAt,
		})
		if err != nil {
			return fmt.Errorf("failed to insert import log: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ImportLogRepository) Recent(ctx context.Context, limit int) ([]domain.ImportLogEntry, error) {
	records, err := r.queries.ListImportLog(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	result := make([]domain.ImportLogEntry, len(records))
	for i, rec := range records {
		result[i] = domain.ImportLogEntry{
			ID:        rec.ID,
			MatchID:   rec.MatchID,
			Source:    rec.Source,
			Policy:    rec.Policy,
			TeamID:    rec.TeamID,
			Status:    domain.ImportStatus(rec.Status),
			Detail:    rec.Detail,
			CreatedAt: rec.CreatedAt,
		}
	}
	return result, nil
}
