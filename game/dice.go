package game

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// Source is the randomness behind dice, mission draws and territory dealing.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// Roller rolls a number of six-sided dice.
type Roller interface {
	Roll(count int) []int
}

type DiceRoller struct {
	src Source
}

func NewDiceRoller(src Source) *DiceRoller {
	return &DiceRoller{src: src}
}

func (d *DiceRoller) Roll(count int) []int {
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		rolls[i] = d.src.Intn(DIE_FACES) + 1
	}
	return rolls
}

// SequenceRoller replays predetermined rolls, one slice per call. Used for replays and tests.
type SequenceRoller struct {
	rolls [][]int
	next  int
}

func NewSequenceRoller(rolls ...[]int) *SequenceRoller {
	return &SequenceRoller{rolls: rolls}
}

func (s *SequenceRoller) Roll(count int) []int {
	if s.next >= len(s.rolls) {
		panic("sequence roller exhausted")
	}
	rolls := s.rolls[s.next]
	if len(rolls) != count {
		panic(fmt.Sprintf("sequence roller: want %d dice, scripted %d", count, len(rolls)))
	}
	s.next++
	out := make([]int, count)
	copy(out, rolls)
	return out
}

// Remaining reports how many scripted rolls have not been used.
func (s *SequenceRoller) Remaining() int {
	return len(s.rolls) - s.next
}

func sortDescending(rolls []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
}
