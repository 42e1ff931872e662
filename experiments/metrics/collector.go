package metrics

import (
	"time"
)

type BattleMetric struct {
	Turn             int
	Player           string // Color of the attacking player
	Attacker         string // Territory names
	Defender         string
	DefenderColor    string
	Rounds           int
	AttackerLosses   int
	DefenderLosses   int
	Conquered        bool
	Moved            int
	MissionCompleted bool
}

type GameMetric struct {
	Players    int
	Setup      string
	Seed       uint64
	Winner     string // Color, "" if nobody won
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
	Attacks    int
	Conquests  int
}

// Collector gathers the battles of one game.
type Collector interface {
	Start(players int, setup string, seed uint64)
	AddTurn()
	AddBattle(b BattleMetric)
	Complete(winner string) (GameMetric, []BattleMetric)
}

type collector struct {
	game    GameMetric
	battles []BattleMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(players int, setup string, seed uint64) {
	m.game = GameMetric{
		Players:   players,
		Setup:     setup,
		Seed:      seed,
		StartTime: time.Now(),
	}
	m.battles = nil
}

func (m *collector) AddTurn() {
	m.game.TotalTurns++
}

func (m *collector) AddBattle(b BattleMetric) {
	m.game.Attacks++
	if b.Conquered {
		m.game.Conquests++
	}
	m.battles = append(m.battles, b)
}

func (m *collector) Complete(winner string) (GameMetric, []BattleMetric) {
	m.game.Winner = winner
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	return m.game, m.battles
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(players int, setup string, seed uint64) {}
func (m *dummyCollector) AddTurn()                                     {}
func (m *dummyCollector) AddBattle(b BattleMetric)                     {}
func (m *dummyCollector) Complete(winner string) (GameMetric, []BattleMetric) {
	return GameMetric{Winner: winner}, nil
}
