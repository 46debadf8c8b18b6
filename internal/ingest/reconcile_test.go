package ingest_test

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/ingest"
	"valorant-analytics/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestReconcileSingleKill(t *testing.T) {
	payload := testutil.Payload(
		testutil.Info("m1", "x"),
		[]any{testutil.Player(testutil.PlayerA, "Red", 1, 0), testutil.Player(testutil.PlayerB, "Blue", 0, 1)},
		[]any{testutil.Round(0, "Red",
			testutil.RoundStats(testutil.PlayerA, []any{testutil.Kill(testutil.PlayerA, testutil.PlayerB)}, nil),
			testutil.RoundStats(testutil.PlayerB, nil, nil),
		)},
	)
	parsed, err := ingest.Parse(payload)
	require.NoError(t, err)

	tallies := ingest.ReconcileRound(parsed.Rounds()[0].PlayerStats)
	require.Equal(t, ingest.RoundTally{Kills: 1}, tallies[testutil.PlayerA])
	require.Equal(t, ingest.RoundTally{Deaths: 1}, tallies[testutil.PlayerB])
}

func TestReconcileAssistNormalisation(t *testing.T) {
	plain := []ingest.RawPlayerRoundStats{
		{Subject: testutil.PlayerA, Kills: []ingest.RawKill{{Victim: testutil.PlayerB, Assistants: []any{testutil.PlayerC}}}},
		{Subject: testutil.PlayerC},
	}
	structured := []ingest.RawPlayerRoundStats{
		{Subject: testutil.PlayerA, Kills: []ingest.RawKill{{Victim: testutil.PlayerB, Assistants: []any{map[string]any{"subject": testutil.PlayerC}}}}},
		{Subject: testutil.PlayerC},
	}
	alternateKey := []ingest.RawPlayerRoundStats{
		{Subject: testutil.PlayerA, Kills: []ingest.RawKill{{Victim: testutil.PlayerB, Assistants: []any{map[string]any{"puuid": testutil.PlayerC}}}}},
		{Subject: testutil.PlayerC},
	}

	want := ingest.ReconcileRound(plain)[testutil.PlayerC]
	require.Equal(t, 1, want.Assists)
	require.Equal(t, want, ingest.ReconcileRound(structured)[testutil.PlayerC])
	require.Equal(t, want, ingest.ReconcileRound(alternateKey)[testutil.PlayerC])
}

func TestAssistantIDs(t *testing.T) {
	ids := ingest.AssistantIDs([]any{
		"a",
		map[string]any{"subject": "b"},
		map[string]any{"id": "c"},
		map[string]any{"subject": "a"},
		map[string]any{"unknown": "d"},
		"",
		42,
	})
	require.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestReconcileGhostIDsAreCounted(t *testing.T) {
	stats := []ingest.RawPlayerRoundStats{
		{Subject: testutil.PlayerA, Kills: []ingest.RawKill{
			{Victim: "ghost", Assistants: []any{"ghost-2"}},
			{Victim: testutil.PlayerB},
		}},
		{Subject: testutil.PlayerB},
	}

	tallies := ingest.ReconcileRound(stats)
	require.Len(t, tallies, 2)
	require.Equal(t, 2, tallies[testutil.PlayerA].Kills)
	require.Equal(t, 1, tallies[testutil.PlayerB].Deaths)
}

func TestReconcileDamageSum(t *testing.T) {
	stats := []ingest.RawPlayerRoundStats{{
		Subject: testutil.PlayerA,
		Damage:  []ingest.RawDamage{{Receiver: testutil.PlayerB, Damage: 120}, {Receiver: testutil.PlayerC, Damage: 33}},
	}}
	require.Equal(t, 153, ingest.ReconcileRound(stats)[testutil.PlayerA].Damage)
}

func TestReconcileDeathsMatchKillCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	players := []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}

	for iteration := range 500 {
		stats := make([]ingest.RawPlayerRoundStats, len(players))
		totalKills := 0
		for i, subject := range players {
			stats[i].Subject = subject
			for range rng.IntN(4) {
				victim := players[rng.IntN(len(players))]
				var assistants []any
				for range rng.IntN(3) {
					assistant := players[rng.IntN(len(players))]
					if rng.IntN(2) == 0 {
						assistants = append(assistants, assistant)
					} else {
						assistants = append(assistants, map[string]any{"subject": assistant})
					}
				}
				stats[i].Kills = append(stats[i].Kills, ingest.RawKill{Victim: victim, Assistants: assistants})
				totalKills++
			}
		}

		rng.Shuffle(len(stats), func(i, j int) { stats[i], stats[j] = stats[j], stats[i] })

		tallies := ingest.ReconcileRound(stats)
		var deaths, kills int
		for _, tally := range tallies {
			deaths += tally.Deaths
			kills += tally.Kills
		}
		require.Equal(t, totalKills, deaths, fmt.Sprintf("iteration %d", iteration))
		require.Equal(t, totalKills, kills, fmt.Sprintf("iteration %d", iteration))
	}
}

func TestReconcileOrderIndependent(t *testing.T) {
	stats := []ingest.RawPlayerRoundStats{
		{Subject: testutil.PlayerA, Kills: []ingest.RawKill{{Victim: testutil.PlayerB, Assistants: []any{testutil.PlayerC}}}},
		{Subject: testutil.PlayerB, Kills: []ingest.RawKill{{Victim: testutil.PlayerC}}},
		{Subject: testutil.PlayerC, Kills: []ingest.RawKill{{Victim: testutil.PlayerA, Assistants: []any{testutil.PlayerB}}}},
	}
	reversed := []ingest.RawPlayerRoundStats{stats[2], stats[1], stats[0]}

	require.Equal(t, ingest.ReconcileRound(stats), ingest.ReconcileRound(reversed))
}

func TestWinningTeam(t *testing.T) {
	rounds := func(winners ...string) []ingest.RawRound {
		out := make([]ingest.RawRound, len(winners))
		for i, w := range winners {
			out[i] = ingest.RawRound{RoundNum: i, WinningTeam: w}
		}
		return out
	}

	require.Nil(t, ingest.WinningTeam(nil))
	require.Equal(t, domain.SideRed, *ingest.WinningTeam(rounds("Red", "Red", "Blue")))
	require.Equal(t, domain.SideBlue, *ingest.WinningTeam(rounds("Blue", "Red", "Blue")))
	require.Equal(t, domain.SideDraw, *ingest.WinningTeam(rounds("Blue", "Red")))
	require.Equal(t, domain.SideDraw, *ingest.WinningTeam(rounds("", "")))
}

func TestWinningTeamRandomised(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	sides := []string{"Red", "Blue", ""}

	for range 300 {
		n := rng.IntN(30)
		var red, blue int
		rounds := make([]ingest.RawRound, n)
		for i := range rounds {
			rounds[i].WinningTeam = sides[rng.IntN(len(sides))]
			switch rounds[i].WinningTeam {
			case "Red":
				red++
			case "Blue":
				blue++
			}
		}

		got := ingest.WinningTeam(rounds)
		switch {
		case n == 0:
			require.Nil(t, got)
		case red > blue:
			require.Equal(t, domain.SideRed, *got)
		case blue > red:
			require.Equal(t, domain.SideBlue, *got)
		default:
			require.Equal(t, domain.SideDraw, *got)
		}
	}
}
