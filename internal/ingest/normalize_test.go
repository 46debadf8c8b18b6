package ingest_test

import (
	"encoding/json"
	"testing"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/ingest"
	"valorant-analytics/internal/testutil"

	"github.com/stretchr/testify/require"
)

func build(t *testing.T, payload map[string]any) *domain.MatchBundle {
	t.Helper()

	parsed, err := ingest.Parse(payload)
	require.NoError(t, err)

	bundle, err := ingest.Build(parsed)
	require.NoError(t, err)

	return bundle
}

func TestBuildBasicMatch(t *testing.T) {
	bundle := build(t, testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent"))

	require.Equal(t, "m1", bundle.Match.MatchID)
	require.Equal(t, "/Game/Maps/Ascent/Ascent", bundle.Match.MapID)
	require.Equal(t, int64(1718740000123), bundle.Match.GameStartMillis)
	require.Equal(t, "competitive", bundle.Match.QueueID)
	require.NotNil(t, bundle.Match.WinningTeam)
	require.Equal(t, domain.SideRed, *bundle.Match.WinningTeam)

	require.Len(t, bundle.Players, 3)
	require.Len(t, bundle.Participants, 3)
	require.Equal(t, domain.SideRed, bundle.Participants[0].Side)
	require.Equal(t, 1, bundle.Participants[0].Kills)
	require.Equal(t, 2, bundle.Participants[0].Ability1Casts)

	require.Len(t, bundle.Rounds, 1)
	require.Nil(t, bundle.Rounds[0].PlantLocation)
	require.Nil(t, bundle.Rounds[0].BombPlanter)

	stats := map[string]domain.RoundParticipantStat{}
	for _, s := range bundle.RoundStats {
		stats[s.Puuid] = s
	}
	require.Equal(t, 1, stats[testutil.PlayerA].Kills)
	require.Equal(t, 0, stats[testutil.PlayerA].Deaths)
	require.Equal(t, 150, stats[testutil.PlayerA].Damage)
	require.Equal(t, 0, stats[testutil.PlayerB].Kills)
	require.Equal(t, 1, stats[testutil.PlayerB].Deaths)
	require.Equal(t, 1, stats[testutil.PlayerC].Assists)
	require.Equal(t, 3900, stats[testutil.PlayerC].LoadoutValue)

	require.Len(t, bundle.Kills, 1)
	require.Equal(t, testutil.PlayerA, *bundle.Kills[0].Killer)
	require.JSONEq(t, `["puuid-c"]`, string(bundle.Kills[0].Assistants))
	require.Len(t, bundle.Damage, 3)
	require.Equal(t, []int{0, 1, 2}, []int{bundle.Damage[0].DamageIndex, bundle.Damage[1].DamageIndex, bundle.Damage[2].DamageIndex})
}

func TestBuildToleratesMissingNestedObjects(t *testing.T) {
	kill := testutil.Kill("", testutil.PlayerB)
	delete(kill, "victimLocation")
	delete(kill, "finishingDamage")
	delete(kill, "playerLocations")
	delete(kill, "assistants")

	stats := testutil.RoundStats(testutil.PlayerA, []any{kill}, nil)
	delete(stats, "economy")

	player := testutil.Player(testutil.PlayerA, "Red", 0, 0)
	delete(player, "stats")
	player["characterId"] = nil

	bundle := build(t, testutil.Payload(
		testutil.Info("m1", "x"),
		[]any{player},
		[]any{testutil.Round(0, "Blue", stats)},
	))

	require.Len(t, bundle.Kills, 1)
	got := bundle.Kills[0]
	require.Nil(t, got.Killer)
	require.Nil(t, got.VictimLocation)
	require.Nil(t, got.DamageType)
	require.Nil(t, got.DamageItem)
	require.Nil(t, got.PlayerLocations)
	require.JSONEq(t, `[]`, string(got.Assistants))

	require.Nil(t, bundle.Participants[0].CharacterID)
	require.Zero(t, bundle.Participants[0].Kills)
	require.Zero(t, bundle.RoundStats[0].LoadoutValue)
}

func TestBuildPlantLocation(t *testing.T) {
	round := testutil.Round(3, "Red")
	round["bombPlanter"] = testutil.PlayerA
	round["plantRoundTime"] = 41000
	round["plantLocation"] = map[string]any{"x": 5100.5, "y": -200}
	round["plantSite"] = "B"

	bundle := build(t, testutil.Payload(testutil.Info("m1", "x"), nil, []any{round}))

	require.Len(t, bundle.Rounds, 1)
	r := bundle.Rounds[0]
	require.Equal(t, 3, r.RoundNum)
	require.Equal(t, testutil.PlayerA, *r.BombPlanter)
	require.Equal(t, int64(41000), *r.PlantRoundTime)
	require.Equal(t, domain.Location{X: 5100.5, Y: -200}, *r.PlantLocation)
	require.Equal(t, "B", *r.PlantSite)
	require.Nil(t, r.DefuseLocation)
	require.Nil(t, r.DefuseRoundTime)
}

func TestBuildWithoutRounds(t *testing.T) {
	bundle := build(t, testutil.Payload(testutil.Info("m1", "x"), []any{testutil.Player(testutil.PlayerA, "Red", 0, 0)}, nil))
	require.Nil(t, bundle.Match.WinningTeam)
	require.Empty(t, bundle.RoundStats)
}

func TestBuildRejectsDuplicates(t *testing.T) {
	dupPlayers := testutil.Payload(testutil.Info("m1", "x"), []any{
		testutil.Player(testutil.PlayerA, "Red", 0, 0),
		testutil.Player(testutil.PlayerA, "Blue", 0, 0),
	}, nil)
	parsed, err := ingest.Parse(dupPlayers)
	require.NoError(t, err)
	_, err = ingest.Build(parsed)
	require.ErrorIs(t, err, domain.ErrInvalidMatchData)

	dupRounds := testutil.Payload(testutil.Info("m1", "x"), nil, []any{testutil.Round(0, "Red"), testutil.Round(0, "Blue")})
	parsed, err = ingest.Parse(dupRounds)
	require.NoError(t, err)
	_, err = ingest.Build(parsed)
	require.ErrorIs(t, err, domain.ErrInvalidMatchData)
}

func TestBuildPlayerLocationsBlob(t *testing.T) {
	bundle := build(t, testutil.BasicMatch("m1", "x"))

	var locations []map[string]any
	require.NoError(t, json.Unmarshal(bundle.Kills[0].PlayerLocations, &locations))
	require.Len(t, locations, 1)
	require.Equal(t, testutil.PlayerA, locations[0]["subject"])
}
