package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Round is one roll-and-compare exchange of a battle.
type Round struct {
	AttackerRolls  []int // Sorted in descending order
	DefenderRolls  []int // Sorted in descending order
	AttackerLosses int
	DefenderLosses int
}

// Battle resolves an attack from one territory on another, round by round.
//
// A battle starts in DiceSelection. Fight resolves a round and moves to Continue, or to
// Concluded when the attacker is down to one troop or the defender has none left. From
// Continue the attacker either presses on (back to DiceSelection) or stops (Concluded).
// A battle concluded with the defender at zero troops has conquered the territory.
type Battle struct {
	Attacker *Territory
	Defender *Territory
	Phase    Phase
	Rounds   []Round

	defeatedColor string
	rules         Rules
	roller        Roller
	conquered     bool
	moved         int
}

// CheckAttack validates an attack without changing either territory.
func CheckAttack(attacker, defender *Territory) error {
	if attacker == nil || defender == nil {
		return fmt.Errorf("cannot attack: %w", ErrUnknownTerritory)
	}
	if attacker == defender || attacker.Name == defender.Name {
		return fmt.Errorf("cannot attack: %w", ErrSameTerritory)
	}
	if attacker.Troops < MinAttackTroops {
		return fmt.Errorf("cannot attack from %s: %w", attacker.Name, ErrNotEnoughTroops)
	}
	if attacker.Color == defender.Color {
		return fmt.Errorf("cannot attack %s: %w", defender.Name, ErrSameColor)
	}
	return nil
}

// NewBattle opens a battle between two territories. Illegal attacks are rejected before
// anything is rolled or changed.
func NewBattle(attacker, defender *Territory, rules Rules, roller Roller) (*Battle, error) {
	if err := CheckAttack(attacker, defender); err != nil {
		return nil, err
	}
	return &Battle{
		Attacker:      attacker,
		Defender:      defender,
		Phase:         DiceSelection,
		defeatedColor: defender.Color,
		rules:         rules,
		roller:        roller,
	}, nil
}

// DiceLimits returns the most dice each side may roll in the next round. The minimum is one.
func (b *Battle) DiceLimits() (attack, defend int) {
	return AttackDiceLimit(b.rules, b.Attacker.Troops), DefendDiceLimit(b.rules, b.Defender.Troops)
}

// Fight rolls and compares one round with the chosen dice counts.
func (b *Battle) Fight(attackDice, defendDice int) (Round, error) {
	if b.Phase != DiceSelection {
		return Round{}, ErrBattleOver
	}
	maxAttack, maxDefend := b.DiceLimits()
	if attackDice < 1 || attackDice > maxAttack {
		return Round{}, fmt.Errorf("attacker rolls 1 to %d dice, got %d: %w", maxAttack, attackDice, ErrInvalidDice)
	}
	if defendDice < 1 || defendDice > maxDefend {
		return Round{}, fmt.Errorf("defender rolls 1 to %d dice, got %d: %w", maxDefend, defendDice, ErrInvalidDice)
	}

	b.Phase = Resolving
	attackerRolls := b.roller.Roll(attackDice)
	defenderRolls := b.roller.Roll(defendDice)
	sortDescending(attackerRolls)
	sortDescending(defenderRolls)
	round := b.resolve(attackerRolls, defenderRolls)

	if b.CanContinue() {
		b.Phase = Continue
	} else {
		b.conclude()
	}
	return round, nil
}

// resolve applies the losses of a round to both territories.
func (b *Battle) resolve(attackerRolls, defenderRolls []int) Round {
	attackerLosses, defenderLosses := b.rules.DetermineAttackOutcome(attackerRolls, defenderRolls)
	b.Attacker.Troops -= attackerLosses
	b.Defender.Troops -= defenderLosses

	round := Round{
		AttackerRolls:  attackerRolls,
		DefenderRolls:  defenderRolls,
		AttackerLosses: attackerLosses,
		DefenderLosses: defenderLosses,
	}
	b.Rounds = append(b.Rounds, round)

	log.Debug().
		Str("attacker", b.Attacker.Name).
		Str("defender", b.Defender.Name).
		Ints("attacker_rolls", attackerRolls).
		Ints("defender_rolls", defenderRolls).
		Int("attacker_losses", attackerLosses).
		Int("defender_losses", defenderLosses).
		Msg("round resolved")
	return round
}

// CanContinue reports whether another round may be fought.
func (b *Battle) CanContinue() bool {
	return b.Attacker.Troops > 1 && b.Defender.Troops > 0
}

// PressOn starts another round after the attacker decides to keep attacking.
func (b *Battle) PressOn() error {
	if b.Phase != Continue {
		return ErrBattleOver
	}
	b.Phase = DiceSelection
	return nil
}

// Stop ends the battle at the attacker's choice.
func (b *Battle) Stop() {
	if b.Phase == Concluded {
		return
	}
	b.conclude()
}

func (b *Battle) conclude() {
	b.Phase = Concluded
	if b.Defender.Troops == 0 {
		b.Defender.Color = b.Attacker.Color
		b.conquered = true
	}
}

// Conquered reports whether the battle ended with the defender taken.
func (b *Battle) Conquered() bool {
	return b.conquered
}

// Conquest describes the territory taken, valid only when Conquered is true.
func (b *Battle) Conquest() Conquest {
	return Conquest{
		Territory:     b.Defender.Name,
		DefeatedColor: b.defeatedColor,
		NewColor:      b.Defender.Color,
	}
}

// MoveLimit is the most troops that may follow into the conquered territory.
func (b *Battle) MoveLimit() int {
	return MoveInLimit(b.rules, b.Attacker.Troops)
}

// MoveIn transfers troops from the attacker into the conquered territory. It can be done once,
// and always leaves at least one troop behind.
func (b *Battle) MoveIn(troops int) error {
	if !b.conquered {
		return ErrNoConquest
	}
	if b.moved > 0 {
		return fmt.Errorf("troops already moved: %w", ErrInvalidMove)
	}
	limit := b.MoveLimit()
	if troops < 1 || troops > limit || troops >= b.Attacker.Troops {
		return fmt.Errorf("move 1 to %d troops, got %d: %w", limit, troops, ErrInvalidMove)
	}
	b.Attacker.Troops -= troops
	b.Defender.Troops += troops
	b.moved = troops
	return nil
}

// Moved returns the troops moved in after the conquest.
func (b *Battle) Moved() int {
	return b.moved
}
