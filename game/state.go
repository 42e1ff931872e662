package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// SetupMode selects how territories get their owners before the game starts.
type SetupMode int

const (
	SetupFixed   SetupMode = iota // Owners from the territory table
	SetupShuffle                  // Territories dealt at random among the players
	SetupManual                   // Owners typed in for each territory
)

// ParseSetupMode maps a configuration value to a SetupMode.
func ParseSetupMode(s string) (SetupMode, error) {
	switch s {
	case "fixed":
		return SetupFixed, nil
	case "shuffle", "":
		return SetupShuffle, nil
	case "manual":
		return SetupManual, nil
	default:
		return 0, fmt.Errorf("unknown setup mode %q: %w", s, ErrInvalidSetup)
	}
}

func (m SetupMode) String() string {
	switch m {
	case SetupFixed:
		return "fixed"
	case SetupShuffle:
		return "shuffle"
	case SetupManual:
		return "manual"
	default:
		return "unknown"
	}
}

// GameState owns everything that changes during a game: the map, the players and whose turn it is.
type GameState struct {
	Map           *Map
	Roster        *Roster
	Catalog       Catalog
	Rules         Rules
	Source        Source // Mission draws and dealing
	Roller        Roller // Dice
	Sink          Sink   // Status lines for the players
	CurrentPlayer int    // Index into Roster.Players
	Turn          int
	Won           string // Color of the winner, "" if no winner yet
	started       bool
}

// NewGameState initializes a game on m with the standard catalog and dice rolled from src.
func NewGameState(m *Map, rules Rules, src Source) *GameState {
	return &GameState{
		Map:     m,
		Roster:  NewRoster(),
		Catalog: StandardCatalog(),
		Rules:   rules,
		Source:  src,
		Roller:  NewDiceRoller(src),
		Sink:    Discard,
	}
}

// RegisterPlayer adds a player of the given color and draws their mission.
func (gs *GameState) RegisterPlayer(color string) (*Player, error) {
	if gs.started {
		return nil, fmt.Errorf("cannot register %q: game already started", color)
	}
	if len(color) > MaxColorLength {
		return nil, fmt.Errorf("cannot register %q: %w", color, ErrUnknownColor)
	}
	missionID := AssignMission(gs.Source, color, gs.Roster, gs.Catalog)
	p := &Player{Color: color, MissionID: missionID}
	if err := gs.Roster.Add(p); err != nil {
		return nil, err
	}
	log.Debug().Str("player", color).Int("mission", missionID).Msg("player registered")
	return p, nil
}

// DealTerritories shuffles the territories and deals them round-robin to the registered players.
func (gs *GameState) DealTerritories() error {
	colors := gs.Roster.Colors()
	if len(colors) == 0 {
		return fmt.Errorf("cannot deal territories: no players: %w", ErrInvalidSetup)
	}
	order := make([]*Territory, len(gs.Map.Territories))
	copy(order, gs.Map.Territories)
	gs.Source.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for i, t := range order {
		t.Color = colors[i%len(colors)]
	}
	return nil
}

// AssignOwners sets the owner of every territory, in table order.
func (gs *GameState) AssignOwners(colors []string) error {
	if len(colors) != len(gs.Map.Territories) {
		return fmt.Errorf("got %d owners for %d territories: %w", len(colors), len(gs.Map.Territories), ErrInvalidSetup)
	}
	for _, color := range colors {
		if !IsPaletteColor(color) {
			return fmt.Errorf("cannot assign owner %q: %w", color, ErrUnknownColor)
		}
	}
	for i, t := range gs.Map.Territories {
		t.Color = colors[i]
	}
	return nil
}

// Start checks the setup and opens the first turn. Elimination missions that can no longer be
// played are replaced and returned.
func (gs *GameState) Start() ([]*Player, error) {
	if gs.started {
		return nil, fmt.Errorf("game already started: %w", ErrInvalidSetup)
	}
	if len(gs.Roster.Players) == 0 {
		return nil, fmt.Errorf("no players registered: %w", ErrInvalidSetup)
	}
	if err := gs.Map.Validate(); err != nil {
		return nil, err
	}
	if len(gs.Map.OwnerColors()) < 2 {
		return nil, fmt.Errorf("territories need at least two owner colors: %w", ErrInvalidSetup)
	}
	changed := ReconcileMissions(gs.Roster, gs.Map, gs.Catalog)
	gs.started = true
	gs.CurrentPlayer = 0
	gs.Turn = 1
	return changed, nil
}

// Player returns the player whose turn it is.
func (gs *GameState) Player() *Player {
	if len(gs.Roster.Players) == 0 {
		return nil
	}
	return gs.Roster.Players[gs.CurrentPlayer]
}

// NextPlayer returns the index of the player after the current one.
func (gs *GameState) NextPlayer() int {
	return (gs.CurrentPlayer + 1) % len(gs.Roster.Players)
}

// EndTurn passes the turn to the next player.
func (gs *GameState) EndTurn() {
	gs.CurrentPlayer = gs.NextPlayer()
	gs.Turn++
}

// CanAttack reports whether color holds a territory able to attack and some territory of
// another color exists.
func (gs *GameState) CanAttack(color string) bool {
	armed := false
	for _, t := range gs.Map.Territories {
		if t.Color == color && t.Troops >= MinAttackTroops {
			armed = true
			break
		}
	}
	return armed && gs.Map.CountOwned(color) < len(gs.Map.Territories)
}

// AnyCanAttack reports whether at least one registered player has a legal attack.
func (gs *GameState) AnyCanAttack() bool {
	for _, p := range gs.Roster.Players {
		if gs.CanAttack(p.Color) {
			return true
		}
	}
	return false
}

// Winner returns the color of the winner, "" if no winner yet.
func (gs *GameState) Winner() string {
	return gs.Won
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	c.Map = gs.Map.Copy()
	c.Roster = gs.Roster.Copy()
	return &c
}
