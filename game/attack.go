package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Decider supplies the choices the players make during a battle. Counts are expected within
// the limits given; out-of-range counts are asked for again.
type Decider interface {
	AttackDice(b *Battle, max int) (int, error)
	DefendDice(b *Battle, max int) (int, error)
	PressOn(b *Battle) (bool, error)
	MoveIn(b *Battle, max int) (int, error)
}

// Outcome summarizes a finished attack.
type Outcome struct {
	Attacker         string
	Defender         string
	AttackerColor    string
	DefenderColor    string // Color before the attack
	Rounds           []Round
	Conquered        bool
	Moved            int
	MissionCompleted bool
}

// Attack plays an attack by the current player from one territory on another, then evaluates
// the player's mission if the territory was conquered. Illegal attacks change nothing.
func (gs *GameState) Attack(from, to string, d Decider) (Outcome, error) {
	if gs.Won != "" {
		return Outcome{}, ErrGameOver
	}
	player := gs.Player()
	if player == nil {
		return Outcome{}, fmt.Errorf("cannot attack: %w", ErrUnknownPlayer)
	}
	attacker, ok := gs.Map.Find(from)
	if !ok {
		return Outcome{}, fmt.Errorf("cannot attack from %q: %w", from, ErrUnknownTerritory)
	}
	defender, ok := gs.Map.Find(to)
	if !ok {
		return Outcome{}, fmt.Errorf("cannot attack %q: %w", to, ErrUnknownTerritory)
	}
	if attacker.Color != player.Color {
		return Outcome{}, fmt.Errorf("cannot attack from %s: %w", from, ErrNotOwner)
	}

	b, err := NewBattle(attacker, defender, gs.Rules, gs.Roller)
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{
		Attacker:      attacker.Name,
		Defender:      defender.Name,
		AttackerColor: attacker.Color,
		DefenderColor: defender.Color,
	}

	gs.Sink.Say("%s (%s, %d troops) attacks %s (%s, %d troops)",
		attacker.Name, attacker.Color, attacker.Troops, defender.Name, defender.Color, defender.Troops)

	err = gs.fight(b, d)
	outcome.Rounds = b.Rounds
	if err != nil && len(b.Rounds) == 0 {
		return outcome, err
	}

	if !b.Conquered() {
		gs.Sink.Say("Attack failed! %s keeps %d troops", defender.Name, defender.Troops)
		return outcome, err
	}

	outcome.Conquered = true
	gs.Sink.Say("%s conquered by %s!", defender.Name, attacker.Color)
	if EvaluateMission(player, gs.Map, gs.Catalog, gs.Rules, b.Conquest()) {
		outcome.MissionCompleted = true
		gs.Won = player.Color
		gs.Sink.Say("Mission complete! %s wins the game", player.Color)
		return outcome, err
	}

	moveErr := gs.moveIn(b, d)
	outcome.Moved = b.Moved()
	if err == nil {
		err = moveErr
	}
	return outcome, err
}

// fight runs rounds until the battle concludes. A decider error after the first round stops
// the battle where it stands.
func (gs *GameState) fight(b *Battle, d Decider) error {
	for {
		maxAttack, maxDefend := b.DiceLimits()
		attackDice, err := askCount(func() (int, error) { return d.AttackDice(b, maxAttack) }, maxAttack)
		if err != nil {
			b.Stop()
			return err
		}
		defendDice, err := askCount(func() (int, error) { return d.DefendDice(b, maxDefend) }, maxDefend)
		if err != nil {
			b.Stop()
			return err
		}

		round, err := b.Fight(attackDice, defendDice)
		if err != nil {
			return err
		}
		gs.Sink.Say("Attacker rolls %v, defender rolls %v", round.AttackerRolls, round.DefenderRolls)
		gs.Sink.Say("Attacker loses %d, defender loses %d (%s: %d, %s: %d)",
			round.AttackerLosses, round.DefenderLosses,
			b.Attacker.Name, b.Attacker.Troops, b.Defender.Name, b.Defender.Troops)

		if b.Phase == Concluded {
			return nil
		}
		press, err := d.PressOn(b)
		if err != nil || !press {
			b.Stop()
			return err
		}
		if err := b.PressOn(); err != nil {
			return err
		}
	}
}

// moveIn asks how many troops follow into the conquered territory. If the decider fails, a
// single troop moves so the territory is never left empty.
func (gs *GameState) moveIn(b *Battle, d Decider) error {
	limit := b.MoveLimit()
	troops, err := askCount(func() (int, error) { return d.MoveIn(b, limit) }, limit)
	if err != nil {
		troops = 1
	}
	if moveErr := b.MoveIn(troops); moveErr != nil {
		return errors.Join(err, moveErr)
	}
	gs.Sink.Say("%d troops moved to %s", troops, b.Defender.Name)
	return err
}

// askCount repeats a prompt until it yields a count in [1, max].
func askCount(ask func() (int, error), max int) (int, error) {
	for {
		n, err := ask()
		if err != nil {
			return 0, err
		}
		if n >= 1 && n <= max {
			return n, nil
		}
		log.Warn().Int("count", n).Int("max", max).Msg("count out of range, asking again")
	}
}
