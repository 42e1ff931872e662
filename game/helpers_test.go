package game

// fixedSource returns scripted draws and leaves shuffles in place.
type fixedSource struct {
	draws []int
	next  int
}

func (f *fixedSource) Intn(n int) int {
	if len(f.draws) == 0 {
		return 0
	}
	v := f.draws[f.next%len(f.draws)]
	f.next++
	return v % n
}

func (f *fixedSource) Shuffle(n int, swap func(i, j int)) {}

// scriptedDecider plays back battle choices, one entry per call. Counts repeat their last value.
type scriptedDecider struct {
	attack []int
	defend []int
	press  []bool
	move   int

	attackCalls int
	defendCalls int
	moveAsked   int
	moveMax     int
}

func (s *scriptedDecider) AttackDice(b *Battle, max int) (int, error) {
	n := pick(s.attack, s.attackCalls)
	s.attackCalls++
	return n, nil
}

func (s *scriptedDecider) DefendDice(b *Battle, max int) (int, error) {
	n := pick(s.defend, s.defendCalls)
	s.defendCalls++
	return n, nil
}

func (s *scriptedDecider) PressOn(b *Battle) (bool, error) {
	if len(s.press) == 0 {
		return false, nil
	}
	press := s.press[0]
	s.press = s.press[1:]
	return press, nil
}

func (s *scriptedDecider) MoveIn(b *Battle, max int) (int, error) {
	s.moveAsked++
	s.moveMax = max
	return s.move, nil
}

func pick(values []int, i int) int {
	if i < len(values) {
		return values[i]
	}
	return values[len(values)-1]
}

// smallMap builds a map from (name, color, troops) triples.
func smallMap(territories ...Territory) *Map {
	m := NewMap()
	for i := range territories {
		t := territories[i]
		if err := m.AddTerritory(&t); err != nil {
			panic(err)
		}
	}
	return m
}

// startedGame registers players by color, assigning the given mission IDs, and starts the game.
func startedGame(m *Map, roller Roller, players ...Player) *GameState {
	gs := NewGameState(m, NewStandardRules(), &fixedSource{})
	gs.Roller = roller
	for i := range players {
		p := players[i]
		if err := gs.Roster.Add(&p); err != nil {
			panic(err)
		}
	}
	gs.started = true
	gs.Turn = 1
	return gs
}
