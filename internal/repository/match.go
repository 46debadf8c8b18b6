package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/domain"

	"github.com/rs/zerolog"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Store writes one import pass of a match. The existence check, the purge
// of a previous pass and the write all run in the same transaction, so a
// failed write leaves the previously stored pass in place. With
// ConflictSkip an existing match is left untouched and stored is false.
func (r *MatchRepository) Store(ctx context.Context, bundle *domain.MatchBundle, policy domain.ConflictPolicy) (bool, error) {
	matchID := bundle.Match.MatchID

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	exists, err := qtx.MatchExists(ctx, matchID)
	if err != nil {
		return false, fmt.Errorf("failed to check match %s: %w", matchID, err)
	}

	if exists != 0 {
		if policy == domain.ConflictSkip {
			r.logger.Debug().Str("match_id", matchID).Msg("match already stored, skipping")
			return false, nil
		}

		r.logger.Debug().Str("match_id", matchID).Msg("purging previous import")
		if err := purge(ctx, qtx, matchID); err != nil {
			return false, err
		}
	}

	if err := write(ctx, qtx, bundle); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit match %s: %w", matchID, err)
	}
	return true, nil
}

// purge deletes the rows of a match deepest-owned first.
func purge(ctx context.Context, qtx *db.Queries, matchID string) error {
	steps := []struct {
		name string
		run  func(context.Context, string) error
	}{
		{"round stats", qtx.DeleteRoundParticipantStats},
		{"kill events", qtx.DeleteKillEvents},
		{"damage events", qtx.DeleteDamageEvents},
		{"participants", qtx.DeleteMatchParticipants},
		{"rounds", qtx.DeleteRounds},
	}

	for _, step := range steps {
		if err := step.run(ctx, matchID); err != nil {
			return fmt.Errorf("failed to delete %s of match %s: %w", step.name, matchID, err)
		}
	}

	if _, err := qtx.DeleteMatch(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match %s: %w", matchID, err)
	}
	return nil
}

func write(ctx context.Context, qtx *db.Queries, bundle *domain.MatchBundle) error {
	now := time.Now().UTC()
	m := bundle.Match
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	err := qtx.InsertMatch(ctx, db.InsertMatchParams{
		MatchID:            m.MatchID,
		MapID:              m.MapID,
		GamePodID:          m.GamePodID,
		GameLoopZone:       m.GameLoopZone,
		GameServerAddress:  m.GameServerAddress,
		GameVersion:        m.GameVersion,
		GameLengthMillis:   m.GameLengthMillis,
		GameStartMillis:    m.GameStartMillis,
		ProvisioningFlowID: m.ProvisioningFlowID,
		IsCompleted:        m.IsCompleted,
		CustomGameName:     m.CustomGameName,
		QueueID:            m.QueueID,
		GameMode:           m.GameMode,
		IsRanked:           m.IsRanked,
		SeasonID:           m.SeasonID,
		CompletionState:    m.CompletionState,
		PlatformType:       m.PlatformType,
		WinningTeam:        sideToNullable(m.WinningTeam),
		TeamID:             m.TeamID,
		OpponentName:       m.OpponentName,
		CreatedAt:          createdAt,
		UpdatedAt:          now,
	})
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", m.MatchID, err)
	}

	for _, p := range bundle.Players {
		err := qtx.UpsertPlayer(ctx, db.UpsertPlayerParams{
			Puuid:     p.Puuid,
			Name:      p.Name,
			Tag:       p.Tag,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", p.Puuid, err)
		}
	}

	for _, mp := range bundle.Participants {
		err := qtx.InsertMatchParticipant(ctx, db.InsertMatchParticipantParams{
			MatchID:         mp.MatchID,
			Puuid:           mp.Puuid,
			TeamSide:        string(mp.Side),
			PartyID:         mp.PartyID,
			CharacterID:     mp.CharacterID,
			CompetitiveTier: int64(mp.CompetitiveTier),
			Score:           int64(mp.Score),
			RoundsPlayed:    int64(mp.RoundsPlayed),
			Kills:           int64(mp.Kills),
			Deaths:          int64(mp.Deaths),
			Assists:         int64(mp.Assists),
			PlaytimeMillis:  mp.PlaytimeMillis,
			GrenadeCasts:    int64(mp.GrenadeCasts),
			Ability1Casts:   int64(mp.Ability1Casts),
			Ability2Casts:   int64(mp.Ability2Casts),
			UltimateCasts:   int64(mp.UltimateCasts),
		})
		if err != nil {
			return fmt.Errorf("failed to insert participant %s/%s: %w", mp.MatchID, mp.Puuid, err)
		}
	}

	for _, round := range bundle.Rounds {
		plantX, plantY := splitLocation(round.PlantLocation)
		defuseX, defuseY := splitLocation(round.DefuseLocation)
		err := qtx.InsertRound(ctx, db.InsertRoundParams{
			MatchID:         round.MatchID,
			RoundNum:        int64(round.RoundNum),
			RoundResult:     round.RoundResult,
			RoundCeremony:   round.RoundCeremony,
			RoundResultCode: round.RoundResultCode,
			WinningTeam:     sideToNullable(round.WinningTeam),
			BombPlanter:     round.BombPlanter,
			BombDefuser:     round.BombDefuser,
			PlantRoundTime:  round.PlantRoundTime,
			DefuseRoundTime: round.DefuseRoundTime,
			PlantLocationX:  plantX,
			PlantLocationY:  plantY,
			DefuseLocationX: defuseX,
			DefuseLocationY: defuseY,
			PlantSite:       round.PlantSite,
		})
		if err != nil {
			return fmt.Errorf("failed to insert round %s/%d: %w", round.MatchID, round.RoundNum, err)
		}
	}

	for _, s := range bundle.RoundStats {
		err := qtx.InsertRoundParticipantStat(ctx, db.InsertRoundParticipantStatParams{
			MatchID:       s.MatchID,
			RoundNum:      int64(s.RoundNum),
			Puuid:         s.Puuid,
			Score:         int64(s.Score),
			Kills:         int64(s.Kills),
			Deaths:        int64(s.Deaths),
			Assists:       int64(s.Assists),
			Damage:        int64(s.Damage),
			LoadoutValue:  int64(s.LoadoutValue),
			Weapon:        s.Weapon,
			Armor:         s.Armor,
			Remaining:     int64(s.Remaining),
			Spent:         int64(s.Spent),
			WasAfk:        s.WasAfk,
			WasPenalized:  s.WasPenalized,
			StayedInSpawn: s.StayedInSpawn,
		})
		if err != nil {
			return fmt.Errorf("failed to insert round stat %s/%d/%s: %w", s.MatchID, s.RoundNum, s.Puuid, err)
		}
	}

	for _, k := range bundle.Kills {
		x, y := splitLocation(k.VictimLocation)
		assistants := string(k.Assistants)
		if assistants == "" {
			assistants = "[]"
		}
		var locations *string
		if len(k.PlayerLocations) > 0 {
			s := string(k.PlayerLocations)
			locations = &s
		}

		err := qtx.InsertKillEvent(ctx, db.InsertKillEventParams{
			MatchID:             k.MatchID,
			RoundNum:            int64(k.RoundNum),
			KillIndex:           int64(k.KillIndex),
			GameTime:            k.GameTime,
			RoundTime:           k.RoundTime,
			Killer:              k.Killer,
			Victim:              k.Victim,
			VictimLocationX:     x,
			VictimLocationY:     y,
			DamageType:          k.DamageType,
			DamageItem:          k.DamageItem,
			IsSecondaryFireMode: k.IsSecondaryFireMode,
			Assistants:          assistants,
			PlayerLocations:     locations,
		})
		if err != nil {
			return fmt.Errorf("failed to insert kill %s/%d/%d: %w", k.MatchID, k.RoundNum, k.KillIndex, err)
		}
	}

	for _, d := range bundle.Damage {
		err := qtx.InsertDamageEvent(ctx, db.InsertDamageEventParams{
			MatchID:     d.MatchID,
			RoundNum:    int64(d.RoundNum),
			DamageIndex: int64(d.DamageIndex),
			Attacker:    d.Attacker,
			Receiver:    d.Receiver,
			Damage:      int64(d.Damage),
			Legshots:    int64(d.Legshots),
			Bodyshots:   int64(d.Bodyshots),
			Headshots:   int64(d.Headshots),
		})
		if err != nil {
			return fmt.Errorf("failed to insert damage %s/%d/%d: %w", d.MatchID, d.RoundNum, d.DamageIndex, err)
		}
	}

	return nil
}

func (r *MatchRepository) Exists(ctx context.Context, matchID string) (bool, error) {
	exists, err := r.queries.MatchExists(ctx, matchID)
	if err != nil {
		return false, err
	}
	return exists != 0, nil
}

func (r *MatchRepository) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	m, err := r.queries.GetMatch(ctx, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Match{
		MatchID:            m.MatchID,
		MapID:              m.MapID,
		GamePodID:          m.GamePodID,
		GameLoopZone:       m.GameLoopZone,
		GameServerAddress:  m.GameServerAddress,
		GameVersion:        m.GameVersion,
		GameLengthMillis:   m.GameLengthMillis,
		GameStartMillis:    m.GameStartMillis,
		ProvisioningFlowID: m.ProvisioningFlowID,
		IsCompleted:        m.IsCompleted,
		CustomGameName:     m.CustomGameName,
		QueueID:            m.QueueID,
		GameMode:           m.GameMode,
		IsRanked:           m.IsRanked,
		SeasonID:           m.SeasonID,
		CompletionState:    m.CompletionState,
		PlatformType:       m.PlatformType,
		WinningTeam:        nullableToSide(m.WinningTeam),
		TeamID:             m.TeamID,
		OpponentName:       m.OpponentName,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

// Delete removes a match and everything it owns. Players stay.
func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	exists, err := qtx.MatchExists(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to check match %s: %w", matchID, err)
	}
	if exists == 0 {
		return domain.ErrNotFound
	}

	if err := purge(ctx, qtx, matchID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *MatchRepository) ListParticipants(ctx context.Context, matchID string) ([]domain.MatchParticipant, error) {
	rows, err := r.queries.ListMatchParticipants(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MatchParticipant, len(rows))
	for i, p := range rows {
		result[i] = domain.MatchParticipant{
			MatchID:         p.MatchID,
			Puuid:           p.Puuid,
			Side:            domain.Side(p.TeamSide),
			PartyID:         p.PartyID,
			CharacterID:     p.CharacterID,
			CompetitiveTier: int(p.CompetitiveTier),
			Score:           int(p.Score),
			RoundsPlayed:    int(p.RoundsPlayed),
			Kills:           int(p.Kills),
			Deaths:          int(p.Deaths),
			Assists:         int(p.Assists),
			PlaytimeMillis:  p.PlaytimeMillis,
			GrenadeCasts:    int(p.GrenadeCasts),
			Ability1Casts:   int(p.Ability1Casts),
			Ability2Casts:   int(p.Ability2Casts),
			UltimateCasts:   int(p.UltimateCasts),
		}
	}
	return result, nil
}

func (r *MatchRepository) ListRounds(ctx context.Context, matchID string) ([]domain.Round, error) {
	rows, err := r.queries.ListRounds(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Round, len(rows))
	for i, round := range rows {
		result[i] = domain.Round{
			MatchID:         round.MatchID,
			RoundNum:        int(round.RoundNum),
			RoundResult:     round.RoundResult,
			RoundCeremony:   round.RoundCeremony,
			RoundResultCode: round.RoundResultCode,
			WinningTeam:     nullableToSide(round.WinningTeam),
			BombPlanter:     round.BombPlanter,
			BombDefuser:     round.BombDefuser,
			PlantRoundTime:  round.PlantRoundTime,
			DefuseRoundTime: round.DefuseRoundTime,
			PlantLocation:   joinLocation(round.PlantLocationX, round.PlantLocationY),
			DefuseLocation:  joinLocation(round.DefuseLocationX, round.DefuseLocationY),
			PlantSite:       round.PlantSite,
		}
	}
	return result, nil
}

func (r *MatchRepository) ListRoundStats(ctx context.Context, matchID string) ([]domain.RoundParticipantStat, error) {
	rows, err := r.queries.ListRoundParticipantStats(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RoundParticipantStat, len(rows))
	for i, s := range rows {
		result[i] = domain.RoundParticipantStat{
			MatchID:       s.MatchID,
			RoundNum:      int(s.RoundNum),
			Puuid:         s.Puuid,
			Score:         int(s.Score),
			Kills:         int(s.Kills),
			Deaths:        int(s.Deaths),
			Assists:       int(s.Assists),
			Damage:        int(s.Damage),
			LoadoutValue:  int(s.LoadoutValue),
			Weapon:        s.Weapon,
			Armor:         s.Armor,
			Remaining:     int(s.Remaining),
			Spent:         int(s.Spent),
			WasAfk:        s.WasAfk,
			WasPenalized:  s.WasPenalized,
			StayedInSpawn: s.StayedInSpawn,
		}
	}
	return result, nil
}

func (r *MatchRepository) ListKills(ctx context.Context, matchID string) ([]domain.KillEvent, error) {
	rows, err := r.queries.ListKillEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.KillEvent, len(rows))
	for i, k := range rows {
		kill := domain.KillEvent{
			MatchID:             k.MatchID,
			RoundNum:            int(k.RoundNum),
			KillIndex:           int(k.KillIndex),
			GameTime:            k.GameTime,
			RoundTime:           k.RoundTime,
			Killer:              k.Killer,
			Victim:              k.Victim,
			VictimLocation:      joinLocation(k.VictimLocationX, k.VictimLocationY),
			DamageType:          k.DamageType,
			DamageItem:          k.DamageItem,
			IsSecondaryFireMode: k.IsSecondaryFireMode,
			Assistants:          json.RawMessage(k.Assistants),
		}
		if k.PlayerLocations != nil {
			kill.PlayerLocations = json.RawMessage(*k.PlayerLocations)
		}
		result[i] = kill
	}
	return result, nil
}

func (r *MatchRepository) ListDamage(ctx context.Context, matchID string) ([]domain.DamageEvent, error) {
	rows, err := r.queries.ListDamageEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DamageEvent, len(rows))
	for i, d := range rows {
		result[i] = domain.DamageEvent{
			MatchID:     d.MatchID,
			RoundNum:    int(d.RoundNum),
			DamageIndex: int(d.DamageIndex),
			Attacker:    d.Attacker,
			Receiver:    d.Receiver,
			Damage:      int(d.Damage),
			Legshots:    int(d.Legshots),
			Bodyshots:   int(d.Bodyshots),
			Headshots:   int(d.Headshots),
		}
	}
	return result, nil
}

func (r *MatchRepository) CountEntities(ctx context.Context, matchID string) (domain.EntityCounts, error) {
	row, err := r.queries.CountMatchEntities(ctx, matchID)
	if err != nil {
		return domain.EntityCounts{}, err
	}

	return domain.EntityCounts{
		Matches:      int(row.Matches),
		Participants: int(row.Participants),
		Rounds:       int(row.Rounds),
		RoundStats:   int(row.RoundStats),
		Kills:        int(row.Kills),
		Damage:       int(row.Damage),
	}, nil
}

func sideToNullable(side *domain.Side) *string {
	if side == nil {
		return nil
	}
	s := string(*side)
	return &s
}

func nullableToSide(s *string) *domain.Side {
	if s == nil {
		return nil
	}
	side := domain.Side(*s)
	return &side
}

func splitLocation(loc *domain.Location) (*float64, *float64) {
	if loc == nil {
		return nil, nil
	}
	x, y := loc.X, loc.Y
	return &x, &y
}

func joinLocation(x, y *float64) *domain.Location {
	if x == nil || y == nil {
		return nil
	}
	return &domain.Location{X: *x, Y: *y}
}
