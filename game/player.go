package game

import (
	"fmt"

	"war/utils"
)

// Player is a registered participant, identified by the color of their army.
type Player struct {
	Color            string
	MissionID        int
	MissionCompleted bool
}

// Roster holds the registered players in registration order.
type Roster struct {
	Players []*Player
}

func NewRoster() *Roster {
	return &Roster{Players: []*Player{}}
}

// Add registers a player. Colors must come from the palette and be unique.
func (r *Roster) Add(p *Player) error {
	if !IsPaletteColor(p.Color) {
		return fmt.Errorf("cannot register %q: %w", p.Color, ErrUnknownColor)
	}
	if r.Has(p.Color) {
		return fmt.Errorf("cannot register %q: %w", p.Color, ErrColorTaken)
	}
	if len(r.Players) >= len(Palette) {
		return ErrRosterFull
	}
	r.Players = append(r.Players, p)
	return nil
}

// Has reports whether a player with this color is registered.
func (r *Roster) Has(color string) bool {
	_, ok := r.Find(color)
	return ok
}

func (r *Roster) Find(color string) (*Player, bool) {
	i := utils.IndexFunc(r.Players, func(p *Player) bool { return p.Color == color })
	if i < 0 {
		return nil, false
	}
	return r.Players[i], true
}

// Colors returns registered colors in registration order.
func (r *Roster) Colors() []string {
	colors := make([]string, len(r.Players))
	for i, p := range r.Players {
		colors[i] = p.Color
	}
	return colors
}

// AvailableColors returns the palette colors no player has taken yet.
func (r *Roster) AvailableColors() []string {
	available := []string{}
	for _, color := range Palette {
		if !r.Has(color) {
			available = append(available, color)
		}
	}
	return available
}

// Tally counts the territories each registered player holds on the map.
func (r *Roster) Tally(m *Map) map[string]int {
	tally := make(map[string]int, len(r.Players))
	for _, p := range r.Players {
		tally[p.Color] = m.CountOwned(p.Color)
	}
	return tally
}

func (r *Roster) Copy() *Roster {
	c := &Roster{Players: make([]*Player, len(r.Players))}
	for i, p := range r.Players {
		pc := *p
		c.Players[i] = &pc
	}
	return c
}
