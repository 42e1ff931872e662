package game

import "fmt"

// MissionKind tags the variant of a Mission.
type MissionKind int

const (
	EliminateColor  MissionKind = iota // Destroy every army of Target
	HoldTerritories                    // Hold at least Count territories
)

// Mission is a player's secret win condition.
type Mission struct {
	ID          int
	Kind        MissionKind
	Target      string // EliminateColor only
	Count       int    // HoldTerritories only
	Description string
}

func (m Mission) IsElimination() bool {
	return m.Kind == EliminateColor
}

// Catalog is the immutable list of missions, indexed by mission ID.
type Catalog []Mission

// holdCounts are the territory counts of the hold missions, in catalog order.
var holdCounts = []int{3, 4, 5}

// StandardCatalog returns one elimination mission per palette color followed by the hold missions.
// Hold mission IDs satisfy Count == ID - (len(Palette) - holdCounts[0]).
func StandardCatalog() Catalog {
	catalog := make(Catalog, 0, len(Palette)+len(holdCounts))
	for _, color := range Palette {
		catalog = append(catalog, Mission{
			ID:          len(catalog),
			Kind:        EliminateColor,
			Target:      color,
			Description: fmt.Sprintf("Destroy the %s army", color),
		})
	}
	for _, count := range holdCounts {
		catalog = append(catalog, Mission{
			ID:          len(catalog),
			Kind:        HoldTerritories,
			Count:       count,
			Description: fmt.Sprintf("Hold %d territories", count),
		})
	}
	return catalog
}

// Get returns the mission with the given ID.
func (c Catalog) Get(id int) (Mission, bool) {
	if id < 0 || id >= len(c) {
		return Mission{}, false
	}
	return c[id], true
}

// Fallback returns the highest-numbered hold mission, which replaces elimination missions that
// cannot be played.
func (c Catalog) Fallback() Mission {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Kind == HoldTerritories {
			return c[i]
		}
	}
	panic("catalog has no hold mission")
}
