package ingest

import (
	"encoding/json"
	"fmt"
	"valorant-analytics/internal/domain"
)

// Build normalizes a parsed match and fills in the reconciled fields.
func Build(p *ParsedMatch) (*domain.MatchBundle, error) {
	bundle, err := Normalize(p)
	if err != nil {
		return nil, err
	}
	Reconcile(p, bundle)
	return bundle, nil
}

// Normalize maps the raw sections onto flat rows. Cross-player values
// (round deaths, assists, kills, damage and the match winner) are left
// zero for Reconcile.
func Normalize(p *ParsedMatch) (*domain.MatchBundle, error) {
	info := p.Info()
	bundle := &domain.MatchBundle{
		Match: domain.Match{
			MatchID:            info.MatchID,
			MapID:              info.MapID,
			GamePodID:          info.GamePodID,
			GameLoopZone:       info.GameLoopZone,
			GameServerAddress:  info.GameServerAddress,
			GameVersion:        info.GameVersion,
			GameLengthMillis:   info.GameLengthMillis,
			GameStartMillis:    info.GameStartMillis,
			ProvisioningFlowID: info.ProvisioningFlowID,
			IsCompleted:        info.IsCompleted,
			CustomGameName:     info.CustomGameName,
			QueueID:            info.QueueID,
			GameMode:           info.GameMode,
			IsRanked:           info.IsRanked,
			SeasonID:           info.SeasonID,
			CompletionState:    info.CompletionState,
			PlatformType:       info.PlatformType,
		},
	}

	seenPlayers := make(map[string]struct{}, len(p.Players()))
	for _, rp := range p.Players() {
		if _, dup := seenPlayers[rp.Subject]; dup {
			return nil, domain.NewInvalidMatchData("player %s is listed twice", rp.Subject)
		}
		seenPlayers[rp.Subject] = struct{}{}

		bundle.Players = append(bundle.Players, domain.Player{
			Puuid: rp.Subject,
			Name:  rp.GameName,
			Tag:   rp.TagLine,
		})
		bundle.Participants = append(bundle.Participants, normalizeParticipant(info.MatchID, rp))
	}

	seenRounds := make(map[int]struct{}, len(p.Rounds()))
	for _, rr := range p.Rounds() {
		if _, dup := seenRounds[rr.RoundNum]; dup {
			return nil, domain.NewInvalidMatchData("round %d is listed twice", rr.RoundNum)
		}
		seenRounds[rr.RoundNum] = struct{}{}

		bundle.Rounds = append(bundle.Rounds, normalizeRound(info.MatchID, rr))

		seenStats := make(map[string]struct{}, len(rr.PlayerStats))
		killIndex := 0
		damageIndex := 0
		for _, ps := range rr.PlayerStats {
			if _, dup := seenStats[ps.Subject]; !dup {
				seenStats[ps.Subject] = struct{}{}
				bundle.RoundStats = append(bundle.RoundStats, normalizeRoundStat(info.MatchID, rr.RoundNum, ps))
			}

			for _, k := range ps.Kills {
				kill, err := normalizeKill(info.MatchID, rr.RoundNum, killIndex, k)
				if err != nil {
					return nil, err
				}
				bundle.Kills = append(bundle.Kills, kill)
				killIndex++
			}

			for _, d := range ps.Damage {
				bundle.Damage = append(bundle.Damage, domain.DamageEvent{
					MatchID:     info.MatchID,
					RoundNum:    rr.RoundNum,
					DamageIndex: damageIndex,
					Attacker:    ps.Subject,
					Receiver:    d.Receiver,
					Damage:      d.Damage,
					Legshots:    d.Legshots,
					Bodyshots:   d.Bodyshots,
					Headshots:   d.Headshots,
				})
				damageIndex++
			}
		}
	}

	return bundle, nil
}

// Reconcile fills the derived round stat counts and the match winner.
func Reconcile(p *ParsedMatch, bundle *domain.MatchBundle) {
	type statKey struct {
		round int
		puuid string
	}

	index := make(map[statKey]int, len(bundle.RoundStats))
	for i, s := range bundle.RoundStats {
		index[statKey{round: s.RoundNum, puuid: s.Puuid}] = i
	}

	for _, rr := range p.Rounds() {
		for puuid, tally := range ReconcileRound(rr.PlayerStats) {
			i, ok := index[statKey{round: rr.RoundNum, puuid: puuid}]
			if !ok {
				continue
			}
			bundle.RoundStats[i].Kills = tally.Kills
			bundle.RoundStats[i].Deaths = tally.Deaths
			bundle.RoundStats[i].Assists = tally.Assists
			bundle.RoundStats[i].Damage = tally.Damage
		}
	}

	bundle.Match.WinningTeam = WinningTeam(p.Rounds())
}

func normalizeParticipant(matchID string, rp RawPlayer) domain.MatchParticipant {
	mp := domain.MatchParticipant{
		MatchID:         matchID,
		Puuid:           rp.Subject,
		Side:            domain.Side(rp.TeamID),
		PartyID:         rp.PartyID,
		CharacterID:     nonEmpty(rp.CharacterID),
		CompetitiveTier: rp.CompetitiveTier,
	}
	if rp.Stats == nil {
		return mp
	}

	mp.Score = rp.Stats.Score
	mp.RoundsPlayed = rp.Stats.RoundsPlayed
	mp.Kills = rp.Stats.Kills
	mp.Deaths = rp.Stats.Deaths
	mp.Assists = rp.Stats.Assists
	mp.PlaytimeMillis = rp.Stats.PlaytimeMillis
	if casts := rp.Stats.AbilityCasts; casts != nil {
		mp.GrenadeCasts = casts.GrenadeCasts
		mp.Ability1Casts = casts.Ability1Casts
		mp.Ability2Casts = casts.Ability2Casts
		mp.UltimateCasts = casts.UltimateCasts
	}
	return mp
}

func normalizeRound(matchID string, rr RawRound) domain.Round {
	round := domain.Round{
		MatchID:         matchID,
		RoundNum:        rr.RoundNum,
		RoundResult:     rr.RoundResult,
		RoundCeremony:   rr.RoundCeremony,
		RoundResultCode: rr.RoundResultCode,
		BombPlanter:     nonEmpty(rr.BombPlanter),
		BombDefuser:     nonEmpty(rr.BombDefuser),
		PlantRoundTime:  rr.PlantRoundTime,
		DefuseRoundTime: rr.DefuseRoundTime,
		PlantLocation:   location(rr.PlantLocation),
		DefuseLocation:  location(rr.DefuseLocation),
		PlantSite:       nonEmpty(rr.PlantSite),
	}
	if rr.WinningTeam != "" {
		side := domain.Side(rr.WinningTeam)
		round.WinningTeam = &side
	}
	return round
}

func normalizeRoundStat(matchID string, roundNum int, ps RawPlayerRoundStats) domain.RoundParticipantStat {
	stat := domain.RoundParticipantStat{
		MatchID:       matchID,
		RoundNum:      roundNum,
		Puuid:         ps.Subject,
		Score:         ps.Score,
		WasAfk:        ps.WasAfk,
		WasPenalized:  ps.WasPenalized,
		StayedInSpawn: ps.StayedInSpawn,
	}
	if eco := ps.Economy; eco != nil {
		stat.LoadoutValue = eco.LoadoutValue
		stat.Weapon = eco.Weapon
		stat.Armor = eco.Armor
		stat.Remaining = eco.Remaining
		stat.Spent = eco.Spent
	}
	return stat
}

func normalizeKill(matchID string, roundNum, killIndex int, k RawKill) (domain.KillEvent, error) {
	kill := domain.KillEvent{
		MatchID:        matchID,
		RoundNum:       roundNum,
		KillIndex:      killIndex,
		GameTime:       k.GameTime,
		RoundTime:      k.RoundTime,
		Killer:         nonEmpty(k.Killer),
		Victim:         k.Victim,
		VictimLocation: location(k.VictimLocation),
	}
	if fd := k.FinishingDamage; fd != nil {
		kill.DamageType = nonEmpty(fd.DamageType)
		kill.DamageItem = nonEmpty(fd.DamageItem)
		kill.IsSecondaryFireMode = fd.IsSecondaryFireMode
	}

	assistants, err := json.Marshal(AssistantIDs(k.Assistants))
	if err != nil {
		return kill, fmt.Errorf("failed to encode assistants: %w", err)
	}
	kill.Assistants = assistants

	if k.PlayerLocations != nil {
		locations, err := json.Marshal(k.PlayerLocations)
		if err != nil {
			return kill, domain.NewInvalidMatchData("round %d kill %d: player locations: %v", roundNum, killIndex, err)
		}
		kill.PlayerLocations = locations
	}
	return kill, nil
}

func location(l *RawLocation) *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{X: l.X, Y: l.Y}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
