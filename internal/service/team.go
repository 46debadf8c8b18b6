package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"valorant-analytics/internal/constants"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type TeamService struct {
	repo   *repository.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(repo *repository.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	team := &domain.Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create team")
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.logger.Info().Str("team_id", team.ID).Str("name", name).Msg("team created")
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}
