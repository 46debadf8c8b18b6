package ingest_test

import (
	"errors"
	"strings"
	"testing"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/ingest"
	"valorant-analytics/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestParseRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		reason  string
	}{
		{"not an object", []any{1, 2}, "match payload must be an object"},
		{"missing matchInfo", map[string]any{"players": []any{}}, "matchInfo is missing"},
		{"null matchInfo", map[string]any{"matchInfo": nil}, "matchInfo is missing"},
		{"matchInfo wrong type", map[string]any{"matchInfo": "abc"}, "matchInfo must be an object"},
		{"empty match id", testutil.Payload(testutil.Info("", "/Game/Maps/Ascent/Ascent"), nil, nil), "matchInfo.matchId is missing"},
		{"players not a list", map[string]any{"matchInfo": testutil.Info("m1", "x"), "players": map[string]any{}}, "players must be an array"},
		{"player not an object", testutil.Payload(testutil.Info("m1", "x"), []any{"puuid"}, nil), "players[0] must be an object"},
		{"player without subject", testutil.Payload(testutil.Info("m1", "x"), []any{map[string]any{"teamId": "Red"}}, nil), "players[0].subject is missing"},
		{"rounds not objects", testutil.Payload(testutil.Info("m1", "x"), nil, []any{1}), "roundResults[0] must be an object"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ingest.Parse(tc.payload)
			require.Nil(t, parsed)
			require.ErrorIs(t, err, domain.ErrInvalidMatchData)

			var invalid *domain.InvalidMatchDataError
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, tc.reason, invalid.Reason)
		})
	}
}

func TestParseOptionalCollections(t *testing.T) {
	parsed, err := ingest.Parse(map[string]any{"matchInfo": testutil.Info("m1", "/Game/Maps/Ascent/Ascent")})
	require.NoError(t, err)
	require.Equal(t, "m1", parsed.MatchID())
	require.Empty(t, parsed.Players())
	require.Empty(t, parsed.Rounds())
}

func TestParseCanonicalisesFieldCasing(t *testing.T) {
	info := testutil.Info("m1", "x")
	delete(info, "queueID")
	info["QueueId"] = "unrated"

	parsed, err := ingest.Parse(testutil.Payload(info, nil, nil))
	require.NoError(t, err)
	require.Equal(t, "unrated", parsed.Info().QueueID)
	require.Equal(t, "Matchmaking", parsed.Info().ProvisioningFlowID)
}

func TestDecodePayloadKeepsMillisPrecision(t *testing.T) {
	const body = `{"matchInfo":{"matchId":"m1","gameStartMillis":9007199254740993}}`

	payload, err := ingest.DecodePayload(strings.NewReader(body))
	require.NoError(t, err)

	parsed, err := ingest.Parse(payload)
	require.NoError(t, err)
	require.Equal(t, int64(9007199254740993), parsed.Info().GameStartMillis)
}

func TestDecodePayloadInvalidJSON(t *testing.T) {
	_, err := ingest.DecodePayload(strings.NewReader(`{"matchInfo":`))
	require.ErrorIs(t, err, domain.ErrInvalidMatchData)
}
