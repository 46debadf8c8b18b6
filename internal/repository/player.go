package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Get(ctx context.Context, puuid string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByPuuid(ctx, puuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name, tag string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByNameTag(ctx, db.GetPlayerByNameTagParams{
		Name: name,
		Tag:  tag,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]domain.Player, error) {
	searchPattern := "%" + query + "%"
	players, err := r.queries.SearchPlayers(ctx, db.SearchPlayersParams{
		Name:  searchPattern,
		Tag:   searchPattern,
		Alias: &searchPattern,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = *toDomainPlayer(p)
	}
	return result, nil
}

func (r *PlayerRepository) ListByMatch(ctx context.Context, matchID string) ([]domain.Player, error) {
	players, err := r.queries.ListPlayersByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = *toDomainPlayer(p)
	}
	return result, nil
}

// SetAlias stores a display override. A nil or empty alias clears it.
func (r *PlayerRepository) SetAlias(ctx context.Context, puuid string, alias *string) error {
	if alias != nil && *alias == "" {
		alias = nil
	}

	n, err := r.queries.UpdatePlayerAlias(ctx, db.UpdatePlayerAliasParams{
		Alias:     alias,
		UpdatedAt: time.Now().UTC(),
		Puuid:     puuid,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to set alias")
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetMergedTo points puuid at target. Self references and targets that
// already point back at puuid are rejected. The reads and the update share
// one transaction so a concurrent merge cannot close the cycle.
func (r *PlayerRepository) SetMergedTo(ctx context.Context, puuid, target string) error {
	if puuid == target {
		return domain.ErrSelfMerge
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if _, err := qtx.GetPlayerByPuuid(ctx, puuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to load player %s: %w", puuid, err)
	}

	targetPlayer, err := qtx.GetPlayerByPuuid(ctx, target)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to load merge target %s: %w", target, err)
	}
	if targetPlayer.MergedToPuuid != nil && *targetPlayer.MergedToPuuid == puuid {
		return domain.ErrMergeCycle
	}

	if _, err := qtx.UpdatePlayerMergedTo(ctx, db.UpdatePlayerMergedToParams{
		MergedToPuuid: &target,
		UpdatedAt:     time.Now().UTC(),
		Puuid:         puuid,
	}); err != nil {
		return fmt.Errorf("failed to merge player %s: %w", puuid, err)
	}

	r.logger.Debug().Str("puuid", puuid).Str("merged_to", target).Msg("player merged")
	return tx.Commit()
}

func (r *PlayerRepository) ClearMergedTo(ctx context.Context, puuid string) error {
	n, err := r.queries.UpdatePlayerMergedTo(ctx, db.UpdatePlayerMergedToParams{
		MergedToPuuid: nil,
		UpdatedAt:     time.Now().UTC(),
		Puuid:         puuid,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toDomainPlayer(p db.Player) *domain.Player {
	return &domain.Player{
		Puuid:         p.Puuid,
		Name:          p.Name,
		Tag:           p.Tag,
		Alias:         p.Alias,
		MergedToPuuid: p.MergedToPuuid,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
