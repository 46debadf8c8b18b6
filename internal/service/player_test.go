package service_test

import (
	"context"
	"testing"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestPlayerServiceLookupByRiotID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.imports.ImportMatch(ctx, testutil.BasicMatch("m1", "x"), "test")

	player, err := f.people.GetPlayer(ctx, "name-puuid-a%23EUW")
	require.NoError(t, err)
	require.Equal(t, testutil.PlayerA, player.Puuid)

	player, err = f.people.GetPlayer(ctx, testutil.PlayerB)
	require.NoError(t, err)
	require.Equal(t, "name-puuid-b", player.Name)

	_, err = f.people.GetPlayer(ctx, "ghost#EUW")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlayerServiceAliasAndMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.imports.ImportMatch(ctx, testutil.BasicMatch("m1", "x"), "test")

	player, err := f.people.SetAlias(ctx, testutil.PlayerA, "  Duelist  ")
	require.NoError(t, err)
	require.Equal(t, "Duelist", player.DisplayName())

	found, err := f.people.Search(ctx, "duel")
	require.NoError(t, err)
	require.Len(t, found, 1)

	player, err = f.people.Merge(ctx, testutil.PlayerA, testutil.PlayerC)
	require.NoError(t, err)
	require.Equal(t, testutil.PlayerC, *player.MergedToPuuid)

	_, err = f.people.Merge(ctx, testutil.PlayerC, testutil.PlayerA)
	require.ErrorIs(t, err, domain.ErrMergeCycle)
	_, err = f.people.Merge(ctx, testutil.PlayerC, testutil.PlayerC)
	require.ErrorIs(t, err, domain.ErrSelfMerge)

	player, err = f.people.Unmerge(ctx, testutil.PlayerA)
	require.NoError(t, err)
	require.Nil(t, player.MergedToPuuid)
}

func TestTeamServiceRequiresName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.teams.CreateTeam(ctx, "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	team, err := f.teams.CreateTeam(ctx, " Paper Rex ")
	require.NoError(t, err)
	require.Equal(t, "Paper Rex", team.Name)

	got, err := f.teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, team.ID, got.ID)

	_, err = f.teams.GetTeam(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestMatchDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	payload := testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent")
	rounds := payload["roundResults"].([]any)
	payload["roundResults"] = append(rounds, testutil.Round(12, "Blue"))
	require.Equal(t, domain.ImportStatusImported, f.imports.ImportMatch(ctx, payload, "test").Status)

	_, err := f.people.SetAlias(ctx, testutil.PlayerA, "Boaster")
	require.NoError(t, err)

	detail, err := f.details.GetMatch(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "Ascent", detail.MapName)
	require.Len(t, detail.Participants, 3)
	require.Len(t, detail.Rounds, 2)

	names := map[string]domain.ParticipantDetail{}
	for _, p := range detail.Participants {
		names[p.Puuid] = p
	}
	require.Equal(t, "Boaster", names[testutil.PlayerA].Name)
	require.Equal(t, "Jett", names[testutil.PlayerA].AgentName)

	first, second := detail.Rounds[0], detail.Rounds[1]
	require.True(t, first.IsPistol)
	require.Equal(t, domain.SideRed, first.AttackingSide)
	require.Len(t, first.Stats, 3)
	require.Len(t, first.Kills, 1)
	require.Len(t, first.Damage, 3)

	require.Equal(t, 12, second.RoundNum)
	require.True(t, second.IsPistol)
	require.Equal(t, domain.SideBlue, second.AttackingSide)
	require.Empty(t, second.Kills)

	require.NoError(t, f.details.DeleteMatch(ctx, "m1"))
	_, err = f.details.GetMatch(ctx, "m1")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, f.details.DeleteMatch(ctx, "m1"), domain.ErrNotFound)
}
