package game

const (
	DIE_FACES       = 6
	MaxNameLength   = 30 // Territory names
	MaxColorLength  = 10 // Army colors
	MinAttackTroops = 2  // An attack must leave one troop behind
)

// Phase is the state of a battle between two territories.
type Phase int

const (
	Idle Phase = iota
	DiceSelection
	Resolving
	Continue
	Concluded
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case DiceSelection:
		return "dice-selection"
	case Resolving:
		return "resolving"
	case Continue:
		return "continue"
	case Concluded:
		return "concluded"
	default:
		return "unknown"
	}
}

// Sink receives human-readable status lines produced while playing.
type Sink interface {
	Say(format string, args ...any)
}

type discard struct{}

func (discard) Say(string, ...any) {}

// Discard is a Sink that drops every message.
var Discard Sink = discard{}
