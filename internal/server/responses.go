package server

import (
	"encoding/json"
	"strconv"
	"time"
	"valorant-analytics/internal/domain"
)

type teamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type playerResponse struct {
	Puuid         string  `json:"puuid"`
	Name          string  `json:"name"`
	Tag           string  `json:"tag"`
	Alias         *string `json:"alias"`
	MergedToPuuid *string `json:"mergedToPuuid"`
	DisplayName   string  `json:"displayName"`
}

type importLogResponse struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId,omitempty"`
	Source    string    `json:"source"`
	Policy    string    `json:"policy"`
	TeamID    *string   `json:"teamId,omitempty"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Millisecond timestamps are sent as strings so clients never read them
// as float64.
type matchResponse struct {
	MatchID          string                `json:"matchId"`
	MapID            string                `json:"mapId"`
	MapName          string                `json:"mapName"`
	GameVersion      string                `json:"gameVersion"`
	GameStartMillis  string                `json:"gameStartMillis"`
	GameLengthMillis *string               `json:"gameLengthMillis"`
	QueueID          string                `json:"queueId"`
	IsCompleted      bool                  `json:"isCompleted"`
	IsRanked         bool                  `json:"isRanked"`
	SeasonID         string                `json:"seasonId"`
	WinningTeam      *domain.Side          `json:"winningTeam"`
	TeamID           *string               `json:"teamId"`
	OpponentName     *string               `json:"opponentName"`
	Participants     []participantResponse `json:"participants"`
	Rounds           []roundResponse       `json:"rounds"`
}

type participantResponse struct {
	Puuid           string      `json:"puuid"`
	Name            string      `json:"name"`
	Tag             string      `json:"tag"`
	Side            domain.Side `json:"teamId"`
	PartyID         string      `json:"partyId"`
	CharacterID     *string     `json:"characterId"`
	AgentName       string      `json:"agentName"`
	CompetitiveTier int         `json:"competitiveTier"`
	Score           int         `json:"score"`
	RoundsPlayed    int         `json:"roundsPlayed"`
	Kills           int         `json:"kills"`
	Deaths          int         `json:"deaths"`
	Assists         int         `json:"assists"`
}

type roundResponse struct {
	RoundNum        int                 `json:"roundNum"`
	RoundResult     string              `json:"roundResult"`
	RoundResultCode string              `json:"roundResultCode"`
	WinningTeam     *domain.Side        `json:"winningTeam"`
	IsPistol        bool                `json:"isPistol"`
	AttackingSide   domain.Side         `json:"attackingSide"`
	BombPlanter     *string             `json:"bombPlanter"`
	BombDefuser     *string             `json:"bombDefuser"`
	PlantRoundTime  *int64              `json:"plantRoundTime"`
	DefuseRoundTime *int64              `json:"defuseRoundTime"`
	PlantLocation   *domain.Location    `json:"plantLocation"`
	DefuseLocation  *domain.Location    `json:"defuseLocation"`
	PlantSite       *string             `json:"plantSite"`
	PlayerStats     []roundStatResponse `json:"playerStats"`
	Kills           []killResponse      `json:"kills"`
	Damage          []damageResponse    `json:"damage"`
}

type roundStatResponse struct {
	Puuid         string `json:"puuid"`
	Score         int    `json:"score"`
	Kills         int    `json:"kills"`
	Deaths        int    `json:"deaths"`
	Assists       int    `json:"assists"`
	Damage        int    `json:"damage"`
	LoadoutValue  int    `json:"loadoutValue"`
	Weapon        string `json:"weapon"`
	Armor         string `json:"armor"`
	Remaining     int    `json:"remaining"`
	Spent         int    `json:"spent"`
	WasAfk        bool   `json:"wasAfk"`
	WasPenalized  bool   `json:"wasPenalized"`
	StayedInSpawn bool   `json:"stayedInSpawn"`
}

type killResponse struct {
	GameTime            int64            `json:"gameTime"`
	RoundTime           int64            `json:"roundTime"`
	Killer              *string          `json:"killer"`
	Victim              string           `json:"victim"`
	VictimLocation      *domain.Location `json:"victimLocation"`
	DamageType          *string          `json:"damageType"`
	DamageItem          *string          `json:"damageItem"`
	IsSecondaryFireMode bool             `json:"isSecondaryFireMode"`
	Assistants          json.RawMessage  `json:"assistants"`
	PlayerLocations     json.RawMessage  `json:"playerLocations,omitempty"`
}

type damageResponse struct {
	Attacker  string `json:"attacker"`
	Receiver  string `json:"receiver"`
	Damage    int    `json:"damage"`
	Legshots  int    `json:"legshots"`
	Bodyshots int    `json:"bodyshots"`
	Headshots int    `json:"headshots"`
}

func toTeamResponse(t *domain.Team) teamResponse {
	return teamResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func toPlayerResponse(p *domain.Player) playerResponse {
	return playerResponse{
		Puuid:         p.Puuid,
		Name:          p.Name,
		Tag:           p.Tag,
		Alias:         p.Alias,
		MergedToPuuid: p.MergedToPuuid,
		DisplayName:   p.DisplayName(),
	}
}

func toImportLogResponse(e domain.ImportLogEntry) importLogResponse {
	return importLogResponse{
		ID:        e.ID,
		MatchID:   e.MatchID,
		Source:    e.Source,
		Policy:    e.Policy,
		TeamID:    e.TeamID,
		Status:    string(e.Status),
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt,
	}
}

func toMatchResponse(d *domain.MatchDetail) matchResponse {
	m := d.Match
	resp := matchResponse{
		MatchID:         m.MatchID,
		MapID:           m.MapID,
		MapName:         d.MapName,
		GameVersion:     m.GameVersion,
		GameStartMillis: strconv.FormatInt(m.GameStartMillis, 10),
		QueueID:         m.QueueID,
		IsCompleted:     m.IsCompleted,
		IsRanked:        m.IsRanked,
		SeasonID:        m.SeasonID,
		WinningTeam:     m.WinningTeam,
		TeamID:          m.TeamID,
		OpponentName:    m.OpponentName,
		Participants:    make([]participantResponse, len(d.Participants)),
		Rounds:          make([]roundResponse, len(d.Rounds)),
	}
	if m.GameLengthMillis != nil {
		length := strconv.FormatInt(*m.GameLengthMillis, 10)
		resp.GameLengthMillis = &length
	}

	for i, p := range d.Participants {
		resp.Participants[i] = participantResponse{
			Puuid:           p.Puuid,
			Name:            p.Name,
			Tag:             p.Tag,
			Side:            p.Side,
			PartyID:         p.PartyID,
			CharacterID:     p.CharacterID,
			AgentName:       p.AgentName,
			CompetitiveTier: p.CompetitiveTier,
			Score:           p.Score,
			RoundsPlayed:    p.RoundsPlayed,
			Kills:           p.Kills,
			Deaths:          p.Deaths,
			Assists:         p.Assists,
		}
	}

	for i, r := range d.Rounds {
		rr := roundResponse{
			RoundNum:        r.RoundNum,
			RoundResult:     r.RoundResult,
			RoundResultCode: r.RoundResultCode,
			WinningTeam:     r.WinningTeam,
			IsPistol:        r.IsPistol,
			AttackingSide:   r.AttackingSide,
			BombPlanter:     r.BombPlanter,
			BombDefuser:     r.BombDefuser,
			PlantRoundTime:  r.PlantRoundTime,
			DefuseRoundTime: r.DefuseRoundTime,
			PlantLocation:   r.PlantLocation,
			DefuseLocation:  r.DefuseLocation,
			PlantSite:       r.PlantSite,
			PlayerStats:     make([]roundStatResponse, len(r.Stats)),
			Kills:           make([]killResponse, len(r.Kills)),
			Damage:          make([]damageResponse, len(r.Damage)),
		}
		for j, s := range r.Stats {
			rr.PlayerStats[j] = roundStatResponse{
				Puuid:         s.Puuid,
				Score:         s.Score,
				Kills:         s.Kills,
				Deaths:        s.Deaths,
				Assists:       s.Assists,
				Damage:        s.Damage,
				LoadoutValue:  s.LoadoutValue,
				Weapon:        s.Weapon,
				Armor:         s.Armor,
				Remaining:     s.Remaining,
				Spent:         s.Spent,
				WasAfk:        s.WasAfk,
				WasPenalized:  s.WasPenalized,
				StayedInSpawn: s.StayedInSpawn,
			}
		}
		for j, k := range r.Kills {
			rr.Kills[j] = killResponse{
				GameTime:            k.GameTime,
				RoundTime:           k.RoundTime,
				Killer:              k.Killer,
				Victim:              k.Victim,
				VictimLocation:      k.VictimLocation,
				DamageType:          k.DamageType,
				DamageItem:          k.DamageItem,
				IsSecondaryFireMode: k.IsSecondaryFireMode,
				Assistants:          k.Assistants,
				PlayerLocations:     k.PlayerLocations,
			}
		}
		for j, dmg := range r.Damage {
			rr.Damage[j] = damageResponse{
				Attacker:  dmg.Attacker,
				Receiver:  dmg.Receiver,
				Damage:    dmg.Damage,
				Legshots:  dmg.Legshots,
				Bodyshots: dmg.Bodyshots,
				Headshots: dmg.Headshots,
			}
		}
		resp.Rounds[i] = rr
	}

	return resp
}
