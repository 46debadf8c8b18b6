package testutil

// Builders for raw match payloads shaped like the upstream dumps. They
// return plain maps so tests can delete or corrupt any key.

const (
	PlayerA = "puuid-a"
	PlayerB = "puuid-b"
	PlayerC = "puuid-c"
	PlayerD = "puuid-d"
)

func Info(matchID, mapID string) map[string]any {
	return map[string]any{
		"matchId":            matchID,
		"mapId":              mapID,
		"gamePodId":          "aresriot.aws-rclusterprod-euc1-1.eu-gp-frankfurt-1",
		"gameLoopZone":       "eu",
		"gameServerAddress":  "10.0.0.1",
		"gameVersion":        "release-09.00-shipping-28-2535124",
		"gameLengthMillis":   int64(2143598),
		"gameStartMillis":    int64(1718740000123),
		"provisioningFlowID": "Matchmaking",
		"isCompleted":        true,
		"queueID":            "competitive",
		"gameMode":           "/Game/GameModes/Bomb/BombGameMode.BombGameMode_C",
		"isRanked":           true,
		"seasonId":           "52e9749a-429b-7060-99fe-4595426a0cf7",
		"completionState":    "Completed",
		"platformType":       "PC",
	}
}

func Player(subject, team string, kills, deaths int) map[string]any {
	return map[string]any{
		"subject":         subject,
		"gameName":        "name-" + subject,
		"tagLine":         "EUW",
		"teamId":          team,
		"partyId":         "party-" + team,
		"characterId":     "add6443a-41bd-e414-f6ad-e58d267f4e95",
		"competitiveTier": 14,
		"stats": map[string]any{
			"score":          kills * 200,
			"roundsPlayed":   1,
			"kills":          kills,
			"deaths":         deaths,
			"assists":        0,
			"playtimeMillis": int64(95000),
			"abilityCasts": map[string]any{
				"grenadeCasts":  1,
				"ability1Casts": 2,
				"ability2Casts": 0,
				"ultimateCasts": 0,
			},
		},
	}
}

func Kill(killer, victim string, assistants ...any) map[string]any {
	if assistants == nil {
		assistants = []any{}
	}
	return map[string]any{
		"gameTime":       int64(512000),
		"roundTime":      int64(31000),
		"killer":         killer,
		"victim":         victim,
		"victimLocation": map[string]any{"x": 1204.5, "y": -3311.25},
		"assistants":     assistants,
		"finishingDamage": map[string]any{
			"damageType":          "Weapon",
			"damageItem":          "9C82E19D-4575-0200-1A81-3EACF00CF872",
			"isSecondaryFireMode": false,
		},
		"playerLocations": []any{
			map[string]any{"subject": killer, "viewRadians": 1.5, "location": map[string]any{"x": 100, "y": 200}},
		},
	}
}

func Damage(receiver string, amount int) map[string]any {
	return map[string]any{
		"receiver":  receiver,
		"damage":    amount,
		"legshots":  0,
		"bodyshots": 1,
		"headshots": 1,
	}
}

func RoundStats(subject string, kills []any, damage []any) map[string]any {
	if kills == nil {
		kills = []any{}
	}
	if damage == nil {
		damage = []any{}
	}
	return map[string]any{
		"subject": subject,
		"score":   200 * len(kills),
		"kills":   kills,
		"damage":  damage,
		"economy": map[string]any{
			"loadoutValue": 3900,
			"weapon":       "9C82E19D-4575-0200-1A81-3EACF00CF872",
			"armor":        "822BCAB2-40A2-324E-C137-E09195AD7692",
			"remaining":    400,
			"spent":        3900,
		},
		"wasAfk":        false,
		"wasPenalized":  false,
		"stayedInSpawn": false,
	}
}

func Round(num int, winner string, stats ...any) map[string]any {
	if stats == nil {
		stats = []any{}
	}
	return map[string]any{
		"roundNum":        num,
		"roundResult":     "Eliminated",
		"roundCeremony":   "CeremonyDefault",
		"roundResultCode": "Elimination",
		"winningTeam":     winner,
		"bombPlanter":     nil,
		"plantRoundTime":  nil,
		"playerStats":     stats,
	}
}

func Payload(info map[string]any, players []any, rounds []any) map[string]any {
	payload := map[string]any{"matchInfo": info}
	if players != nil {
		payload["players"] = players
	}
	if rounds != nil {
		payload["roundResults"] = rounds
	}
	return payload
}

// BasicMatch is one round where A (Red) kills B (Blue) with C assisting.
func BasicMatch(matchID, mapID string) map[string]any {
	return Payload(
		Info(matchID, mapID),
		[]any{
			Player(PlayerA, "Red", 1, 0),
			Player(PlayerB, "Blue", 0, 1),
			Player(PlayerC, "Red", 0, 0),
		},
		[]any{
			Round(0, "Red",
				RoundStats(PlayerA, []any{Kill(PlayerA, PlayerB, PlayerC)}, []any{Damage(PlayerB, 150)}),
				RoundStats(PlayerB, nil, []any{Damage(PlayerA, 40)}),
				RoundStats(PlayerC, nil, []any{Damage(PlayerB, 20)}),
			),
		},
	)
}
