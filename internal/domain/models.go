package domain

import (
	"encoding/json"
	"time"
)

type Side string

const (
	SideRed  Side = "Red"
	SideBlue Side = "Blue"
	SideDraw Side = "Draw"
)

func (s Side) Valid() bool {
	return s == SideRed || s == SideBlue
}

type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Player struct {
	Puuid         string
	Name          string
	Tag           string
	Alias         *string
	MergedToPuuid *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayName prefers the user supplied alias over the riot id.
func (p Player) DisplayName() string {
	if p.Alias != nil && *p.Alias != "" {
		return *p.Alias
	}
	if p.Tag == "" {
		return p.Name
	}
	return p.Name + "#" + p.Tag
}

type Match struct {
	MatchID            string
	MapID              string
	GamePodID          string
	GameLoopZone       string
	GameServerAddress  string
	GameVersion        string
	GameLengthMillis   *int64
	GameStartMillis    int64
	ProvisioningFlowID string
	IsCompleted        bool
	CustomGameName     string
	QueueID            string
	GameMode           string
	IsRanked           bool
	SeasonID           string
	CompletionState    string
	PlatformType       string
	WinningTeam        *Side
	TeamID             *string
	OpponentName       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type MatchParticipant struct {
	MatchID         string
	Puuid           string
	Side            Side
	PartyID         string
	CharacterID     *string
	CompetitiveTier int
	Score           int
	RoundsPlayed    int
	Kills           int
	Deaths          int
	Assists         int
	PlaytimeMillis  int64
	GrenadeCasts    int
	Ability1Casts   int
	Ability2Casts   int
	UltimateCasts   int
}

type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Round struct {
	MatchID         string
	RoundNum        int
	RoundResult     string
	RoundCeremony   string
	RoundResultCode string
	WinningTeam     *Side
	BombPlanter     *string
	BombDefuser     *string
	PlantRoundTime  *int64
	DefuseRoundTime *int64
	PlantLocation   *Location
	DefuseLocation  *Location
	PlantSite       *string
}

type RoundParticipantStat struct {
	MatchID       string
	RoundNum      int
	Puuid         string
	Score         int
	Kills         int
	Deaths        int
	Assists       int
	Damage        int
	LoadoutValue  int
	Weapon        string
	Armor         string
	Remaining     int
	Spent         int
	WasAfk        bool
	WasPenalized  bool
	StayedInSpawn bool
}

type KillEvent struct {
	MatchID             string
	RoundNum            int
	KillIndex           int
	GameTime            int64
	RoundTime           int64
	Killer              *string
	Victim              string
	VictimLocation      *Location
	DamageType          *string
	DamageItem          *string
	IsSecondaryFireMode bool
	Assistants          json.RawMessage
	PlayerLocations     json.RawMessage
}

type DamageEvent struct {
	MatchID     string
	RoundNum    int
	DamageIndex int
	Attacker    string
	Receiver    string
	Damage      int
	Legshots    int
	Bodyshots   int
	Headshots   int
}

// MatchBundle is every row produced by one import pass of a single match.
type MatchBundle struct {
	Match        Match
	Players      []Player
	Participants []MatchParticipant
	Rounds       []Round
	RoundStats   []RoundParticipantStat
	Kills        []KillEvent
	Damage       []DamageEvent
}

type EntityCounts struct {
	Matches      int
	Participants int
	Rounds       int
	RoundStats   int
	Kills        int
	Damage       int
}

type RoundDetail struct {
	Round
	IsPistol      bool
	AttackingSide Side
	Stats         []RoundParticipantStat
	Kills         []KillEvent
	Damage        []DamageEvent
}

type ParticipantDetail struct {
	MatchParticipant
	Name      string
	Tag       string
	AgentName string
}

type MatchDetail struct {
	Match        Match
	MapName      string
	Participants []ParticipantDetail
	Rounds       []RoundDetail
}
