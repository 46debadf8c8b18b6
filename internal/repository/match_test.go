package repository_test

import (
	"context"
	"testing"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/ingest"
	"valorant-analytics/internal/repository"
	"valorant-analytics/internal/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type repos struct {
	matches *repository.MatchRepository
	players *repository.PlayerRepository
	teams   *repository.TeamRepository
	log     *repository.ImportLogRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()

	sqlDB := testutil.NewDB(t, testutil.Config(t))
	queries := db.New(sqlDB)
	logger := zerolog.Nop()

	return repos{
		matches: repository.NewMatchRepository(sqlDB, queries, logger),
		players: repository.NewPlayerRepository(sqlDB, queries, logger),
		teams:   repository.NewTeamRepository(queries, logger),
		log:     repository.NewImportLogRepository(sqlDB, queries, logger),
	}
}

func bundleOf(t *testing.T, payload map[string]any) *domain.MatchBundle {
	t.Helper()

	parsed, err := ingest.Parse(payload)
	require.NoError(t, err)
	bundle, err := ingest.Build(parsed)
	require.NoError(t, err)

	return bundle
}

func TestStoreWritesEveryEntity(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	stored, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent")), domain.ConflictOverwrite)
	require.NoError(t, err)
	require.True(t, stored)

	counts, err := r.matches.CountEntities(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, domain.EntityCounts{
		Matches:      1,
		Participants: 3,
		Rounds:       1,
		RoundStats:   3,
		Kills:        1,
		Damage:       3,
	}, counts)

	match, err := r.matches.Get(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, int64(1718740000123), match.GameStartMillis)
	require.NotNil(t, match.WinningTeam)
	require.Equal(t, domain.SideRed, *match.WinningTeam)
	require.Nil(t, match.TeamID)

	kills, err := r.matches.ListKills(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, kills, 1)
	require.Equal(t, testutil.PlayerB, kills[0].Victim)
	require.NotNil(t, kills[0].VictimLocation)
	require.InDelta(t, 1204.5, kills[0].VictimLocation.X, 0.001)
	require.JSONEq(t, `["puuid-c"]`, string(kills[0].Assistants))

	stats, err := r.matches.ListRoundStats(ctx, "m1")
	require.NoError(t, err)
	byPuuid := map[string]domain.RoundParticipantStat{}
	for _, s := range stats {
		byPuuid[s.Puuid] = s
	}
	require.Equal(t, 1, byPuuid[testutil.PlayerA].Kills)
	require.Equal(t, 1, byPuuid[testutil.PlayerB].Deaths)
	require.Equal(t, 1, byPuuid[testutil.PlayerC].Assists)

	players, err := r.players.ListByMatch(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, players, 3)
}

func TestStoreOverwriteReplacesPreviousPass(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("abc", "/Game/Maps/Ascent/Ascent")), domain.ConflictOverwrite)
	require.NoError(t, err)

	second := testutil.Payload(
		testutil.Info("abc", "/Game/Maps/Triad/Triad"),
		[]any{testutil.Player(testutil.PlayerA, "Red", 0, 0), testutil.Player(testutil.PlayerB, "Blue", 0, 0)},
		nil,
	)
	stored, err := r.matches.Store(ctx, bundleOf(t, second), domain.ConflictOverwrite)
	require.NoError(t, err)
	require.True(t, stored)

	match, err := r.matches.Get(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, "/Game/Maps/Triad/Triad", match.MapID)

	counts, err := r.matches.CountEntities(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, domain.EntityCounts{Matches: 1, Participants: 2}, counts)
}

func TestStoreSkipLeavesExistingMatch(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent")), domain.ConflictSkip)
	require.NoError(t, err)

	stored, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Triad/Triad")), domain.ConflictSkip)
	require.NoError(t, err)
	require.False(t, stored)

	match, err := r.matches.Get(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "/Game/Maps/Ascent/Ascent", match.MapID)
}

func TestStoreIsIdempotent(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	for range 3 {
		_, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent")), domain.ConflictOverwrite)
		require.NoError(t, err)
	}

	counts, err := r.matches.CountEntities(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, 1, counts.Matches)
	require.Equal(t, 3, counts.Participants)
	require.Equal(t, 1, counts.Kills)
	require.Equal(t, 3, counts.Damage)
}

func TestStoreFailureKeepsPreviousPass(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent")), domain.ConflictOverwrite)
	require.NoError(t, err)

	broken := bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Triad/Triad"))
	missing := "no-such-team"
	broken.Match.TeamID = &missing

	_, err = r.matches.Store(ctx, broken, domain.ConflictOverwrite)
	require.Error(t, err)

	match, err := r.matches.Get(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "/Game/Maps/Ascent/Ascent", match.MapID)

	counts, err := r.matches.CountEntities(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, 3, counts.Participants)
}

func TestDeleteMatch(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.matches.Store(ctx, bundleOf(t, testutil.BasicMatch("m1", "/Game/Maps/Ascent/Ascent")), domain.ConflictOverwrite)
	require.NoError(t, err)

	require.NoError(t, r.matches.Delete(ctx, "m1"))

	counts, err := r.matches.CountEntities(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, domain.EntityCounts{}, counts)

	_, err = r.matches.Get(ctx, "m1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// players outlive their matches
	_, err = r.players.Get(ctx, testutil.PlayerA)
	require.NoError(t, err)

	require.ErrorIs(t, r.matches.Delete(ctx, "m1"), domain.ErrNotFound)
}
