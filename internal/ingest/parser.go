package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"valorant-analytics/internal/domain"

	"github.com/mitchellh/mapstructure"
)

const (
	keyMatchInfo    = "matchInfo"
	keyMatchID      = "matchId"
	keyPlayers      = "players"
	keyRoundResults = "roundResults"
)

// ParsedMatch is a validated view over one raw match payload.
type ParsedMatch struct {
	info    RawMatchInfo
	players []RawPlayer
	rounds  []RawRound
}

func (p *ParsedMatch) MatchID() string {
	return p.info.MatchID
}

func (p *ParsedMatch) Info() RawMatchInfo {
	return p.info
}

func (p *ParsedMatch) Players() []RawPlayer {
	return p.players
}

func (p *ParsedMatch) Rounds() []RawRound {
	return p.rounds
}

// DecodePayload reads a JSON document keeping numbers as json.Number so
// epoch millisecond values never pass through float64.
func DecodePayload(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, domain.NewInvalidMatchData("payload is not valid JSON: %v", err)
	}
	return payload, nil
}

// Parse validates the top level shape of a decoded payload. It has no
// side effects and fails with *domain.InvalidMatchDataError.
func Parse(payload any) (*ParsedMatch, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return nil, domain.NewInvalidMatchData("match payload must be an object")
	}

	rawInfo, ok := root[keyMatchInfo]
	if !ok || rawInfo == nil {
		return nil, domain.NewInvalidMatchData("matchInfo is missing")
	}
	infoMap, ok := rawInfo.(map[string]any)
	if !ok {
		return nil, domain.NewInvalidMatchData("matchInfo must be an object")
	}
	matchID, ok := infoMap[keyMatchID].(string)
	if !ok || strings.TrimSpace(matchID) == "" {
		return nil, domain.NewInvalidMatchData("matchInfo.matchId is missing")
	}

	parsed := &ParsedMatch{}
	if err := decode(infoMap, &parsed.info); err != nil {
		return nil, domain.NewInvalidMatchData("matchInfo: %v", err)
	}

	playerMaps, err := objectList(root, keyPlayers)
	if err != nil {
		return nil, err
	}
	parsed.players = make([]RawPlayer, len(playerMaps))
	for i, m := range playerMaps {
		if err := decode(m, &parsed.players[i]); err != nil {
			return nil, domain.NewInvalidMatchData("players[%d]: %v", i, err)
		}
		if parsed.players[i].Subject == "" {
			return nil, domain.NewInvalidMatchData("players[%d].subject is missing", i)
		}
	}

	roundMaps, err := objectList(root, keyRoundResults)
	if err != nil {
		return nil, err
	}
	parsed.rounds = make([]RawRound, len(roundMaps))
	for i, m := range roundMaps {
		if err := decode(m, &parsed.rounds[i]); err != nil {
			return nil, domain.NewInvalidMatchData("roundResults[%d]: %v", i, err)
		}
	}

	return parsed, nil
}

// objectList returns the optional array stored under key. Absent and null
// both mean an empty collection.
func objectList(root map[string]any, key string) ([]map[string]any, error) {
	raw, ok := root[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, domain.NewInvalidMatchData("%s must be an array", key)
	}

	out := make([]map[string]any, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, domain.NewInvalidMatchData("%s[%d] must be an object", key, i)
		}
		out[i] = m
	}
	return out, nil
}

func decode(input map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	return dec.Decode(input)
}
