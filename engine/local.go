package engine

import (
	"errors"
	"fmt"
	"io"

	"war/communication"
	"war/experiments/metrics"
	"war/game"
	"war/player"

	"github.com/rs/zerolog/log"
)

// Engine runs a game at a single console shared by all players.
type Engine struct {
	State *game.GameState

	comm     communication.Communicator
	metrics  metrics.Collector
	maxTurns int
	seed     uint64
	setup    game.SetupMode
}

func LocalEngine(state *game.GameState, comm communication.Communicator, options ...Option) *Engine {
	e := &Engine{
		State: state,
		comm:  comm,
	}
	defaultOptions(e)
	for _, option := range options {
		option(e)
	}
	state.Sink = comm
	return e
}

// Setup registers the players, gives the territories their owners and starts the game.
func (e *Engine) Setup(mode game.SetupMode) error {
	e.setup = mode
	if _, err := player.Register(e.comm, e.State); err != nil {
		return err
	}

	switch mode {
	case game.SetupFixed:
		for _, t := range e.State.Map.Territories {
			if !e.State.Roster.Has(t.Color) {
				log.Warn().Str("territory", t.Name).Str("color", t.Color).Msg("territory held by a color nobody plays")
			}
		}
	case game.SetupShuffle:
		if err := e.State.DealTerritories(); err != nil {
			return err
		}
	case game.SetupManual:
		if err := e.askOwners(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("setup mode %d: %w", mode, game.ErrInvalidSetup)
	}

	changed, err := e.State.Start()
	if err != nil {
		return err
	}
	for _, p := range changed {
		e.comm.Say("%s, your target holds no territory.", p.Color)
		player.AnnounceMission(e.comm, e.State, p)
	}
	log.Info().Msgf("game set up with %s territories", mode)
	return nil
}

func (e *Engine) askOwners() error {
	colors := e.State.Roster.Colors()
	owners := make([]string, len(e.State.Map.Territories))
	for i, t := range e.State.Map.Territories {
		color, err := e.comm.ReadToken(fmt.Sprintf("Owner of %s: ", t.Name), colors)
		if err != nil {
			return err
		}
		owners[i] = color
	}
	return e.State.AssignOwners(owners)
}

// Run executes the entire game loop until a winner is found, a player exits or the turn limit
// is reached.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.BattleMetric) {
	e.metrics.Start(len(e.State.Roster.Players), e.setup.String(), e.seed)
	log.Info().Msgf("player %s is starting", e.State.Player().Color)

	e.showMap()
	announced := 0
	for e.State.Winner() == "" && e.State.Turn <= e.maxTurns {
		p := e.State.Player()
		if !e.State.CanAttack(p.Color) {
			if !e.State.AnyCanAttack() {
				e.comm.Say("No player can attack. The game ends with no winner.")
				log.Info().Msg("no legal attack left")
				break
			}
			e.comm.Say("%s cannot attack and passes.", p.Color)
			e.endTurn()
			continue
		}
		if announced != e.State.Turn {
			e.comm.Say("Turn %d: %s plays.", e.State.Turn, e.State.Player().Color)
			announced = e.State.Turn
		}
		option, err := e.comm.ReadInt(menu, OptionExit, OptionPass)
		if err != nil {
			log.Info().Err(err).Msg("input closed, leaving the game")
			break
		}
		if option == OptionExit {
			log.Info().Msgf("%s left the game", e.State.Player().Color)
			break
		}
		if err := e.play(option); err != nil {
			log.Info().Err(err).Msg("attack interrupted, leaving the game")
			break
		}
	}

	winner := e.State.Winner()
	if winner != "" {
		e.comm.Say("Game over! %s wins.", winner)
	} else if e.State.Turn > e.maxTurns {
		e.comm.Say("Stopped after %d turns with no winner.", e.maxTurns)
	}
	gameMetric, battleMetrics := e.metrics.Complete(winner)
	log.Info().Msgf("game ended on turn %d, winner: %q", e.State.Turn, winner)
	return winner, gameMetric, battleMetrics
}

const menu = "1) Attack  2) Check mission  3) Show map  4) Pass  0) Exit\nOption: "

// play carries out a menu option. Only a closed input is returned as an error.
func (e *Engine) play(option int) error {
	switch option {
	case OptionAttack:
		return e.attack()
	case OptionMission:
		e.showMission()
	case OptionMap:
		e.showMap()
	case OptionPass:
		e.comm.Say("%s passes.", e.State.Player().Color)
		e.endTurn()
	}
	return nil
}

func (e *Engine) endTurn() {
	e.State.EndTurn()
	e.metrics.AddTurn()
}

// attack asks for the two territories and plays the battle. An illegal attack is reported and
// the same player chooses again; any resolved attack ends the turn.
func (e *Engine) attack() error {
	p := e.State.Player()
	names := e.State.Map.Names()
	from, err := e.comm.ReadToken("Attack from: ", names)
	if err != nil {
		return err
	}
	to, err := e.comm.ReadToken("Attack: ", names)
	if err != nil {
		return err
	}

	turn := e.State.Turn
	outcome, err := e.State.Attack(from, to, &decider{comm: e.comm})
	if len(outcome.Rounds) == 0 {
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			log.Warn().Err(err).Str("player", p.Color).Msg("illegal attack")
			e.comm.Say("Illegal attack: %v", err)
		}
		return nil
	}

	e.metrics.AddBattle(battleMetric(turn, p.Color, outcome))
	if outcome.MissionCompleted {
		e.metrics.AddTurn()
		return nil
	}
	e.endTurn()
	return err
}

func (e *Engine) showMission() {
	p := e.State.Player()
	status, err := game.MissionStatus(p, e.State.Map, e.State.Catalog)
	if err != nil {
		log.Warn().Err(err).Str("player", p.Color).Msg("cannot show mission")
		return
	}
	e.comm.Say("%s, your mission: %s", p.Color, status.Mission.Description)
	if status.Mission.IsElimination() {
		e.comm.Say("%s still holds %d territories.", status.Mission.Target, status.TargetHeld)
	} else {
		e.comm.Say("You hold %d of %d territories.", status.Held, status.Required)
	}
}

func (e *Engine) showMap() {
	e.comm.Say("%-10s %-10s %6s", "Territory", "Army", "Troops")
	for _, t := range e.State.Map.Territories {
		e.comm.Say("%-10s %-10s %6d", t.Name, t.Color, t.Troops)
	}
}

func battleMetric(turn int, color string, o game.Outcome) metrics.BattleMetric {
	m := metrics.BattleMetric{
		Turn:             turn,
		Player:           color,
		Attacker:         o.Attacker,
		Defender:         o.Defender,
		DefenderColor:    o.DefenderColor,
		Rounds:           len(o.Rounds),
		Conquered:        o.Conquered,
		Moved:            o.Moved,
		MissionCompleted: o.MissionCompleted,
	}
	for _, r := range o.Rounds {
		m.AttackerLosses += r.AttackerLosses
		m.DefenderLosses += r.DefenderLosses
	}
	return m
}

// decider asks the players at the console for their battle choices.
type decider struct {
	comm communication.Communicator
}

func (d *decider) AttackDice(b *game.Battle, max int) (int, error) {
	return d.comm.ReadInt(fmt.Sprintf("%s, attack with how many dice (1-%d)? ", b.Attacker.Color, max), 1, max)
}

func (d *decider) DefendDice(b *game.Battle, max int) (int, error) {
	return d.comm.ReadInt(fmt.Sprintf("%s, defend with how many dice (1-%d)? ", b.Defender.Color, max), 1, max)
}

func (d *decider) PressOn(b *game.Battle) (bool, error) {
	answer, err := d.comm.ReadToken(
		fmt.Sprintf("%s has %d troops left. Keep attacking %s? (y/n) ", b.Attacker.Name, b.Attacker.Troops, b.Defender.Name),
		[]string{"y", "n"},
	)
	return answer == "y", err
}

func (d *decider) MoveIn(b *game.Battle, max int) (int, error) {
	return d.comm.ReadInt(fmt.Sprintf("How many troops move to %s (1-%d)? ", b.Defender.Name, max), 1, max)
}
