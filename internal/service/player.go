package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"valorant-analytics/internal/constants"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/repository"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	repo   *repository.PlayerRepository
	logger zerolog.Logger
}

func NewPlayerService(repo *repository.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

// GetPlayer looks a player up by puuid, or by riot id when the key has the
// form name#tag.
func (s *PlayerService) GetPlayer(ctx context.Context, key string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	key, err := url.QueryUnescape(key)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape player key: %w", err)
	}

	if name, tag, ok := strings.Cut(key, "#"); ok {
		s.logger.Debug().Str("name", name).Str("tag", tag).Msg("getting player by riot id")
		return s.repo.GetByName(ctx, name, tag)
	}

	s.logger.Debug().Str("puuid", key).Msg("getting player by puuid")
	return s.repo.Get(ctx, key)
}

func (s *PlayerService) Search(ctx context.Context, query string) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	players, err := s.repo.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search players")
		return nil, err
	}

	s.logger.Info().Int("count", len(players)).Str("query", query).Msg("search completed")
	return players, nil
}

func (s *PlayerService) SetAlias(ctx context.Context, puuid, alias string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	alias = strings.TrimSpace(alias)
	if err := s.repo.SetAlias(ctx, puuid, &alias); err != nil {
		return nil, err
	}

	s.logger.Info().Str("puuid", puuid).Str("alias", alias).Msg("player alias updated")
	return s.repo.Get(ctx, puuid)
}

func (s *PlayerService) Merge(ctx context.Context, puuid, target string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.SetMergedTo(ctx, puuid, target); err != nil {
		s.logger.Warn().Err(err).Str("puuid", puuid).Str("target", target).Msg("merge rejected")
		return nil, err
	}

	s.logger.Info().Str("puuid", puuid).Str("merged_to", target).Msg("player merged")
	return s.repo.Get(ctx, puuid)
}

func (s *PlayerService) Unmerge(ctx context.Context, puuid string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.ClearMergedTo(ctx, puuid); err != nil {
		return nil, err
	}

	s.logger.Info().Str("puuid", puuid).Msg("player merge cleared")
	return s.repo.Get(ctx, puuid)
}
