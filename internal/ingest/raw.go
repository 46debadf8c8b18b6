package ingest

// Raw* types mirror the upstream match dump. Every nested object is a
// pointer and every scalar that some dumps omit is a pointer so a missing
// key decodes to nil instead of a zero value.

type RawMatchInfo struct {
	MatchID            string `mapstructure:"matchId"`
	MapID              string `mapstructure:"mapId"`
	GamePodID          string `mapstructure:"gamePodId"`
	GameLoopZone       string `mapstructure:"gameLoopZone"`
	GameServerAddress  string `mapstructure:"gameServerAddress"`
	GameVersion        string `mapstructure:"gameVersion"`
	GameLengthMillis   *int64 `mapstructure:"gameLengthMillis"`
	GameStartMillis    int64  `mapstructure:"gameStartMillis"`
	ProvisioningFlowID string `mapstructure:"provisioningFlowId"`
	IsCompleted        bool   `mapstructure:"isCompleted"`
	CustomGameName     string `mapstructure:"customGameName"`
	QueueID            string `mapstructure:"queueId"`
	GameMode           string `mapstructure:"gameMode"`
	IsRanked           bool   `mapstructure:"isRanked"`
	SeasonID           string `mapstructure:"seasonId"`
	CompletionState    string `mapstructure:"completionState"`
	PlatformType       string `mapstructure:"platformType"`
}

type RawAbilityCasts struct {
	GrenadeCasts  int `mapstructure:"grenadeCasts"`
	Ability1Casts int `mapstructure:"ability1Casts"`
	Ability2Casts int `mapstructure:"ability2Casts"`
	UltimateCasts int `mapstructure:"ultimateCasts"`
}

type RawPlayerStats struct {
	Score          int              `mapstructure:"score"`
	RoundsPlayed   int              `mapstructure:"roundsPlayed"`
	Kills          int              `mapstructure:"kills"`
	Deaths         int              `mapstructure:"deaths"`
	Assists        int              `mapstructure:"assists"`
	PlaytimeMillis int64            `mapstructure:"playtimeMillis"`
	AbilityCasts   *RawAbilityCasts `mapstructure:"abilityCasts"`
}

type RawPlayer struct {
	Subject         string          `mapstructure:"subject"`
	GameName        string          `mapstructure:"gameName"`
	TagLine         string          `mapstructure:"tagLine"`
	TeamID          string          `mapstructure:"teamId"`
	PartyID         string          `mapstructure:"partyId"`
	CharacterID     *string         `mapstructure:"characterId"`
	CompetitiveTier int             `mapstructure:"competitiveTier"`
	Stats           *RawPlayerStats `mapstructure:"stats"`
}

type RawLocation struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type RawFinishingDamage struct {
	DamageType          *string `mapstructure:"damageType"`
	DamageItem          *string `mapstructure:"damageItem"`
	IsSecondaryFireMode bool    `mapstructure:"isSecondaryFireMode"`
}

type RawKill struct {
	GameTime        int64               `mapstructure:"gameTime"`
	RoundTime       int64               `mapstructure:"roundTime"`
	Killer          *string             `mapstructure:"killer"`
	Victim          string              `mapstructure:"victim"`
	VictimLocation  *RawLocation        `mapstructure:"victimLocation"`
	Assistants      []any               `mapstructure:"assistants"`
	PlayerLocations []any               `mapstructure:"playerLocations"`
	FinishingDamage *RawFinishingDamage `mapstructure:"finishingDamage"`
}

type RawDamage struct {
	Receiver  string `mapstructure:"receiver"`
	Damage    int    `mapstructure:"damage"`
	Legshots  int    `mapstructure:"legshots"`
	Bodyshots int    `mapstructure:"bodyshots"`
	Headshots int    `mapstructure:"headshots"`
}

type RawEconomy struct {
	LoadoutValue int    `mapstructure:"loadoutValue"`
	Weapon       string `mapstructure:"weapon"`
	Armor        string `mapstructure:"armor"`
	Remaining    int    `mapstructure:"remaining"`
	Spent        int    `mapstructure:"spent"`
}

type RawPlayerRoundStats struct {
	Subject       string      `mapstructure:"subject"`
	Score         int         `mapstructure:"score"`
	Kills         []RawKill   `mapstructure:"kills"`
	Damage        []RawDamage `mapstructure:"damage"`
	Economy       *RawEconomy `mapstructure:"economy"`
	WasAfk        bool        `mapstructure:"wasAfk"`
	WasPenalized  bool        `mapstructure:"wasPenalized"`
	StayedInSpawn bool        `mapstructure:"stayedInSpawn"`
}

type RawRound struct {
	RoundNum        int                   `mapstructure:"roundNum"`
	RoundResult     string                `mapstructure:"roundResult"`
	RoundCeremony   string                `mapstructure:"roundCeremony"`
	RoundResultCode string                `mapstructure:"roundResultCode"`
	WinningTeam     string                `mapstructure:"winningTeam"`
	BombPlanter     *string               `mapstructure:"bombPlanter"`
	BombDefuser     *string               `mapstructure:"bombDefuser"`
	PlantRoundTime  *int64                `mapstructure:"plantRoundTime"`
	DefuseRoundTime *int64                `mapstructure:"defuseRoundTime"`
	PlantLocation   *RawLocation          `mapstructure:"plantLocation"`
	DefuseLocation  *RawLocation          `mapstructure:"defuseLocation"`
	PlantSite       *string               `mapstructure:"plantSite"`
	PlayerStats     []RawPlayerRoundStats `mapstructure:"playerStats"`
}
