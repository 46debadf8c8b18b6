package domain

// Round numbering assumes 12 round halves followed by single round
// overtime swaps. Non-standard formats only get an approximate answer.
const (
	RoundsPerHalf     = 12
	RegulationRounds  = RoundsPerHalf * 2
	firstPistolRound  = 0
	secondPistolRound = RoundsPerHalf
)

func IsPistolRound(roundNum int) bool {
	return roundNum == firstPistolRound || roundNum == secondPistolRound
}

// AttackingSide returns the side on attack for a 0-indexed round.
func AttackingSide(roundNum int) Side {
	switch {
	case roundNum < 0:
		return SideRed
	case roundNum < RoundsPerHalf:
		return SideRed
	case roundNum < RegulationRounds:
		return SideBlue
	case (roundNum-RegulationRounds)%2 == 0:
		return SideRed
	default:
		return SideBlue
	}
}

// DefendingSide is the opposite of AttackingSide.
func DefendingSide(roundNum int) Side {
	if AttackingSide(roundNum) == SideRed {
		return SideBlue
	}
	return SideRed
}
