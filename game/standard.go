package game

type StandardRules struct {
	AttackDiceCap     int
	DefendDiceCap     int
	MoveInCap         int
	StrictElimination bool
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		AttackDiceCap: 3,
		DefendDiceCap: 3,
		MoveInCap:     3,
	}
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.AttackDiceCap
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.DefendDiceCap
}

func (sr *StandardRules) MaxMoveIn() int {
	return sr.MoveInCap
}

func (sr *StandardRules) RequiresExtinction() bool {
	return sr.StrictElimination
}

// DetermineAttackOutcome compares rolls sorted in descending order, rank for rank, up to the
// shorter side. The attacker must roll strictly higher to win a pair.
func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
