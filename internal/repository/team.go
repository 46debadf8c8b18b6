package repository

import (
	"context"
	"database/sql"
	"errors"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/domain"

	"github.com/rs/zerolog"
)

type TeamRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewTeamRepository(queries *db.Queries, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	return r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	})
}

func (r *TeamRepository) Get(ctx context.Context, id string) (*domain.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Team{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}, nil
}
