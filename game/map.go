package game

import "war/utils"

type Territory struct {
	Name   string // Unique name of the territory
	Color  string // Color of the army holding the territory
	Troops int    // Troops stationed on the territory
}

// Map represents the game map, containing all the territories in table order.
type Map struct {
	Territories []*Territory
}

// NewMap creates and returns an empty Map.
func NewMap() *Map {
	return &Map{
		Territories: []*Territory{},
	}
}

// AddTerritory adds a new territory to the map. Names must be unique and non-empty.
func (m *Map) AddTerritory(t *Territory) error {
	if t.Name == "" || len(t.Name) > MaxNameLength {
		return ErrInvalidName
	}
	if _, ok := m.Find(t.Name); ok {
		return ErrDuplicateTerritory
	}
	m.Territories = append(m.Territories, t)
	return nil
}

// Find looks up a territory by its exact name.
func (m *Map) Find(name string) (*Territory, bool) {
	i := utils.IndexFunc(m.Territories, func(t *Territory) bool { return t.Name == name })
	if i < 0 {
		return nil, false
	}
	return m.Territories[i], true
}

// Names returns territory names in table order.
func (m *Map) Names() []string {
	names := make([]string, len(m.Territories))
	for i, t := range m.Territories {
		names[i] = t.Name
	}
	return names
}

// CountOwned counts the territories currently held by color.
func (m *Map) CountOwned(color string) int {
	count := 0
	for _, t := range m.Territories {
		if t.Color == color {
			count++
		}
	}
	return count
}

// OwnerColors returns the distinct colors holding territory, in table order.
func (m *Map) OwnerColors() []string {
	colors := []string{}
	for _, t := range m.Territories {
		if t.Color != "" && utils.FindIndex(colors, t.Color) < 0 {
			colors = append(colors, t.Color)
		}
	}
	return colors
}

// TotalTroops sums the troops on the whole board.
func (m *Map) TotalTroops() int {
	total := 0
	for _, t := range m.Territories {
		total += t.Troops
	}
	return total
}

// Copy returns a deep copy of the map.
func (m *Map) Copy() *Map {
	c := &Map{Territories: make([]*Territory, len(m.Territories))}
	for i, t := range m.Territories {
		tc := *t
		c.Territories[i] = &tc
	}
	return c
}

// Validate checks the post-setup invariants: every territory owned and garrisoned.
func (m *Map) Validate() error {
	if len(m.Territories) == 0 {
		return ErrInvalidSetup
	}
	for _, t := range m.Territories {
		if t.Color == "" || t.Troops < 1 {
			return ErrInvalidSetup
		}
	}
	return nil
}

// CreateMap builds the fixed map with its initial owners and garrisons.
func CreateMap() *Map {
	m := NewMap()
	for _, entry := range territoryTable {
		t := entry
		// The table is static and unique, errors are impossible here
		_ = m.AddTerritory(&t)
	}
	return m
}

// GLOBAL DATA. The territory table of the board, in display order.
var territoryTable = []Territory{
	{Name: "America", Color: "Branco", Troops: 4},
	{Name: "Brasil", Color: "Preto", Troops: 8},
	{Name: "Chile", Color: "Branco", Troops: 3},
	{Name: "Peru", Color: "Preto", Troops: 9},
	{Name: "Argelia", Color: "Branco", Troops: 15},
}

// Palette lists the army colors players can pick from. Elimination missions follow this order.
var Palette = []string{"Azul", "Amarelo", "Branco", "Preto", "Verde", "Vermelho"}

// IsPaletteColor reports whether color is one of the army colors.
func IsPaletteColor(color string) bool {
	return utils.FindIndex(Palette, color) >= 0
}
