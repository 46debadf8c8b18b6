package domain_test

import (
	"errors"
	"testing"
	"valorant-analytics/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRoundHeuristics(t *testing.T) {
	tests := []struct {
		round     int
		pistol    bool
		attacking domain.Side
	}{
		{0, true, domain.SideRed},
		{1, false, domain.SideRed},
		{11, false, domain.SideRed},
		{12, true, domain.SideBlue},
		{23, false, domain.SideBlue},
		{24, false, domain.SideRed},
		{25, false, domain.SideBlue},
		{26, false, domain.SideRed},
	}

	for _, tc := range tests {
		require.Equal(t, tc.pistol, domain.IsPistolRound(tc.round), "round %d", tc.round)
		require.Equal(t, tc.attacking, domain.AttackingSide(tc.round), "round %d", tc.round)
		require.NotEqual(t, tc.attacking, domain.DefendingSide(tc.round), "round %d", tc.round)
	}
}

func TestDisplayName(t *testing.T) {
	alias := "Boaster"
	empty := ""

	require.Equal(t, "Boaster", domain.Player{Name: "boaster", Tag: "FNC", Alias: &alias}.DisplayName())
	require.Equal(t, "boaster#FNC", domain.Player{Name: "boaster", Tag: "FNC", Alias: &empty}.DisplayName())
	require.Equal(t, "boaster", domain.Player{Name: "boaster"}.DisplayName())
}

func TestSummarize(t *testing.T) {
	results := []domain.FileImportResult{
		{File: "a", ImportResult: domain.ImportResult{Status: domain.ImportStatusImported}},
		{File: "b", ImportResult: domain.ImportResult{Status: domain.ImportStatusSkipped}},
		{File: "c", ImportResult: domain.ImportResult{Status: domain.ImportStatusError}},
		{File: "d", ImportResult: domain.ImportResult{Status: domain.ImportStatusImported}},
	}

	require.Equal(t, domain.ImportSummary{Imported: 2, Skipped: 1, Failed: 1}, domain.Summarize(results))
	require.Equal(t, domain.ImportSummary{}, domain.Summarize(nil))
}

func TestInvalidMatchDataUnwraps(t *testing.T) {
	err := domain.NewInvalidMatchData("players[%d].subject is missing", 3)

	require.ErrorIs(t, err, domain.ErrInvalidMatchData)
	require.Equal(t, "invalid match data: players[3].subject is missing", err.Error())

	var invalid *domain.InvalidMatchDataError
	require.True(t, errors.As(error(err), &invalid))
	require.Equal(t, "players[3].subject is missing", invalid.Reason)
}

func TestConflictPolicyString(t *testing.T) {
	require.Equal(t, "overwrite", domain.ConflictOverwrite.String())
	require.Equal(t, "skip", domain.ConflictSkip.String())
}
