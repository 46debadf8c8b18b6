package ingest

import "valorant-analytics/internal/domain"

// Structured assistant entries have carried the player id under each of
// these keys across dump versions. Checked in order.
var assistantIDKeys = []string{"subject", "puuid", "assistantPuuid", "playerId", "id"}

// AssistantID normalises one assistant entry, either a bare id string or
// an object carrying the id, to the player id.
func AssistantID(entry any) (string, bool) {
	switch v := entry.(type) {
	case string:
		return v, v != ""
	case map[string]any:
		for _, key := range assistantIDKeys {
			if id, ok := v[key].(string); ok && id != "" {
				return id, true
			}
		}
	}
	return "", false
}

// AssistantIDs returns the distinct ids in an assistant list, in order.
func AssistantIDs(entries []any) []string {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		id, ok := AssistantID(entry)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// FlattenKills combines every player's kill list for one round. A kill is
// only ever listed under its killer so nothing is deduplicated.
func FlattenKills(stats []RawPlayerRoundStats) []RawKill {
	var total int
	for _, s := range stats {
		total += len(s.Kills)
	}
	kills := make([]RawKill, 0, total)
	for _, s := range stats {
		kills = append(kills, s.Kills...)
	}
	return kills
}

type RoundTally struct {
	Kills   int
	Deaths  int
	Assists int
	Damage  int
}

// ReconcileRound derives per-player tallies for every player with a stat
// block in the round. Kills and damage come from the player's own block,
// deaths and assists from everyone else's kill lists. Ids that do not
// belong to a tracked player are counted but not returned.
func ReconcileRound(stats []RawPlayerRoundStats) map[string]RoundTally {
	deaths := make(map[string]int)
	assists := make(map[string]int)
	for _, kill := range FlattenKills(stats) {
		deaths[kill.Victim]++
		for _, id := range AssistantIDs(kill.Assistants) {
			assists[id]++
		}
	}

	tallies := make(map[string]RoundTally, len(stats))
	for _, s := range stats {
		tally := tallies[s.Subject]
		tally.Kills += len(s.Kills)
		for _, d := range s.Damage {
			tally.Damage += d.Damage
		}
		tallies[s.Subject] = tally
	}
	for subject, tally := range tallies {
		tally.Deaths = deaths[subject]
		tally.Assists = assists[subject]
		tallies[subject] = tally
	}
	return tallies
}

// WinningTeam compares round wins. No rounds means no result.
func WinningTeam(rounds []RawRound) *domain.Side {
	if len(rounds) == 0 {
		return nil
	}

	var red, blue int
	for _, r := range rounds {
		switch domain.Side(r.WinningTeam) {
		case domain.SideRed:
			red++
		case domain.SideBlue:
			blue++
		}
	}

	side := domain.SideDraw
	switch {
	case red > blue:
		side = domain.SideRed
	case blue > red:
		side = domain.SideBlue
	}
	return &side
}
