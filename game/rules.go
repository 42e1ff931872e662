package game

type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	MaxMoveIn() int
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
	// RequiresExtinction makes elimination missions wait until the target color holds nothing.
	RequiresExtinction() bool
}

// AttackDiceLimit is the most dice a territory with troops may attack with.
func AttackDiceLimit(r Rules, troops int) int {
	return min(r.MaxAttackDice(), troops-1)
}

// DefendDiceLimit is the most dice a territory with troops may defend with.
func DefendDiceLimit(r Rules, troops int) int {
	return min(r.MaxDefendDice(), troops)
}

// MoveInLimit is the most troops an attacker with troops may move into a conquered territory.
func MoveInLimit(r Rules, troops int) int {
	return min(r.MaxMoveIn(), troops-1)
}
