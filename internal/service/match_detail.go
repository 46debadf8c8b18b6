package service

import (
	"context"
	"fmt"
	"valorant-analytics/internal/constants"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/repository"

	"github.com/rs/zerolog"
)

type MatchDetailService struct {
	references *ReferenceCache
	matchRepo  *repository.MatchRepository
	playerRepo *repository.PlayerRepository
	logger     zerolog.Logger
}

func NewMatchDetailService(references *ReferenceCache, matchRepo *repository.MatchRepository, playerRepo *repository.PlayerRepository, logger zerolog.Logger) *MatchDetailService {
	return &MatchDetailService{references: references, matchRepo: matchRepo, playerRepo: playerRepo, logger: logger}
}

func (s *MatchDetailService) GetMatch(ctx context.Context, matchID string) (*domain.MatchDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Debug().Str("match_id", matchID).Msg("getting match")

	match, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}

	participants, err := s.matchRepo.ListParticipants(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	players, err := s.playerRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	rounds, err := s.matchRepo.ListRounds(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	stats, err := s.matchRepo.ListRoundStats(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list round stats: %w", err)
	}
	kills, err := s.matchRepo.ListKills(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kills: %w", err)
	}
	damage, err := s.matchRepo.ListDamage(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list damage: %w", err)
	}

	byPuuid := make(map[string]domain.Player, len(players))
	for _, p := range players {
		byPuuid[p.Puuid] = p
	}

	detail := &domain.MatchDetail{
		Match:        *match,
		MapName:      s.references.MapName(ctx, match.MapID),
		Participants: make([]domain.ParticipantDetail, len(participants)),
		Rounds:       make([]domain.RoundDetail, len(rounds)),
	}

	for i, mp := range participants {
		pd := domain.ParticipantDetail{MatchParticipant: mp}
		if p, ok := byPuuid[mp.Puuid]; ok {
			pd.Name = p.DisplayName()
			pd.Tag = p.Tag
		}
		if mp.CharacterID != nil {
			pd.AgentName = s.references.AgentName(ctx, *mp.CharacterID)
		}
		detail.Participants[i] = pd
	}

	index := make(map[int]int, len(rounds))
	for i, r := range rounds {
		index[r.RoundNum] = i
		detail.Rounds[i] = domain.RoundDetail{
			Round:         r,
			IsPistol:      domain.IsPistolRound(r.RoundNum),
			AttackingSide: domain.AttackingSide(r.RoundNum),
		}
	}
	for _, st := range stats {
		if i, ok := index[st.RoundNum]; ok {
			detail.Rounds[i].Stats = append(detail.Rounds[i].Stats, st)
		}
	}
	for _, k := range kills {
		if i, ok := index[k.RoundNum]; ok {
			detail.Rounds[i].Kills = append(detail.Rounds[i].Kills, k)
		}
	}
	for _, d := range damage {
		if i, ok := index[d.RoundNum]; ok {
			detail.Rounds[i].Damage = append(detail.Rounds[i].Damage, d)
		}
	}

	s.logger.Info().Str("match_id", matchID).Int("rounds", len(rounds)).Msg("match loaded")
	return detail, nil
}

func (s *MatchDetailService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to delete match")
		return err
	}

	s.logger.Info().Str("match_id", matchID).Msg("match deleted")
	return nil
}
