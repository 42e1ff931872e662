package engine

import (
	"io"
	"testing"

	"war/communication"
	"war/experiments/metrics"
	"war/game"

	"github.com/stretchr/testify/require"
)

// drawSource always draws the same catalog index and never shuffles.
type drawSource int

func (d drawSource) Intn(n int) int                     { return int(d) % n }
func (d drawSource) Shuffle(n int, swap func(i, j int)) {}

func newEngine(t *testing.T, mission int, roller game.Roller, lines ...string) (*Engine, *communication.Script) {
	t.Helper()
	gs := game.NewGameState(game.CreateMap(), game.NewStandardRules(), drawSource(mission))
	gs.Roller = roller
	script := communication.NewScript(lines...)
	e := LocalEngine(gs, script, WithMetrics(metrics.NewCollector()), WithSeed(7))
	return e, script
}

func TestLocalEngineSetup(t *testing.T) {
	t.Run("fixed owners", func(t *testing.T) {
		e, _ := newEngine(t, 6, game.NewSequenceRoller(), "2", "Preto", "Branco")

		require.NoError(t, e.Setup(game.SetupFixed))

		require.Equal(t, 1, e.State.Turn)
		require.Equal(t, "Preto", e.State.Player().Color)
		require.Equal(t, 2, e.State.Map.CountOwned("Preto"))
	})

	t.Run("manual owners", func(t *testing.T) {
		e, script := newEngine(t, 6, game.NewSequenceRoller(),
			"2", "Azul", "Verde",
			"azul", "Preto", "VERDE", "Azul", "Verde", "Azul")

		require.NoError(t, e.Setup(game.SetupManual))

		require.Equal(t, 3, e.State.Map.CountOwned("Azul"))
		require.Equal(t, 2, e.State.Map.CountOwned("Verde"))
		require.Zero(t, e.State.Map.CountOwned("Branco"))
		require.Contains(t, script.Said, "Choose one of: Azul, Verde.")
	})

	t.Run("shuffled owners", func(t *testing.T) {
		e, _ := newEngine(t, 6, game.NewSequenceRoller(), "3", "Azul", "Verde", "Amarelo")

		require.NoError(t, e.Setup(game.SetupShuffle))

		require.Equal(t, 2, e.State.Map.CountOwned("Azul"))
		require.Equal(t, 2, e.State.Map.CountOwned("Verde"))
		require.Equal(t, 1, e.State.Map.CountOwned("Amarelo"))
	})

	t.Run("unplayable elimination replaced at start", func(t *testing.T) {
		// Index 4 targets Verde, which joins but holds nothing with fixed owners
		e, script := newEngine(t, 4, game.NewSequenceRoller(), "2", "Verde", "Preto")

		require.NoError(t, e.Setup(game.SetupFixed))

		preto, ok := e.State.Roster.Find("Preto")
		require.True(t, ok)
		require.Equal(t, 8, preto.MissionID)
		require.Contains(t, script.Said, "Preto, your mission: Hold 5 territories")
	})

	t.Run("one color cannot hold every territory", func(t *testing.T) {
		e, _ := newEngine(t, 6, game.NewSequenceRoller(), "1", "Preto")

		require.ErrorIs(t, e.Setup(game.SetupShuffle), game.ErrInvalidSetup)
	})

	t.Run("closed input", func(t *testing.T) {
		e, _ := newEngine(t, 6, game.NewSequenceRoller(), "2", "Preto")

		require.ErrorIs(t, e.Setup(game.SetupFixed), io.EOF)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("conquest and move-in end the turn", func(t *testing.T) {
		roller := game.NewSequenceRoller([]int{6, 5, 3}, []int{4, 2}, []int{6, 6, 6}, []int{1})
		e, script := newEngine(t, 7, roller,
			"2", "Preto", "Branco",
			"1", "Brasil", "Chile", "3", "2", "y", "3", "1", "3",
			"0")
		require.NoError(t, e.Setup(game.SetupFixed))

		winner, gameMetric, battles := e.Run()

		require.Empty(t, winner)
		chile, _ := e.State.Map.Find("Chile")
		brasil, _ := e.State.Map.Find("Brasil")
		require.Equal(t, "Preto", chile.Color)
		require.Equal(t, 3, chile.Troops)
		require.Equal(t, 5, brasil.Troops)
		require.Equal(t, "Branco", e.State.Player().Color)
		require.Equal(t, 2, e.State.Turn)
		require.Zero(t, roller.Remaining())

		require.Equal(t, 1, gameMetric.Attacks)
		require.Equal(t, 1, gameMetric.Conquests)
		require.Equal(t, uint64(7), gameMetric.Seed)
		require.Equal(t, "fixed", gameMetric.Setup)
		require.Len(t, battles, 1)
		require.Equal(t, 2, battles[0].Rounds)
		require.Equal(t, 3, battles[0].DefenderLosses)
		require.Equal(t, 3, battles[0].Moved)
		require.Contains(t, script.Said, "Chile conquered by Preto!")
		require.Contains(t, script.Said, "Turn 2: Branco plays.")
	})

	t.Run("completing the mission wins without moving in", func(t *testing.T) {
		roller := game.NewSequenceRoller([]int{6, 5, 3}, []int{4, 2}, []int{6, 6, 6}, []int{1})
		e, script := newEngine(t, 6, roller,
			"2", "Preto", "Branco",
			"1", "Brasil", "Chile", "3", "2", "y", "3", "1")
		require.NoError(t, e.Setup(game.SetupFixed))

		winner, gameMetric, battles := e.Run()

		require.Equal(t, "Preto", winner)
		require.Equal(t, 1, gameMetric.TotalTurns, "The winning turn is counted")
		require.True(t, battles[0].MissionCompleted)
		require.Zero(t, battles[0].Moved)
		require.Contains(t, script.Said, "Game over! Preto wins.")
		for _, prompt := range script.Prompts {
			require.NotContains(t, prompt, "How many troops move")
		}
	})

	t.Run("illegal attack keeps the same player", func(t *testing.T) {
		e, script := newEngine(t, 6, game.NewSequenceRoller(),
			"2", "Preto", "Branco",
			"1", "Chile", "Peru",
			"0")
		require.NoError(t, e.Setup(game.SetupFixed))

		_, gameMetric, _ := e.Run()

		require.Equal(t, "Preto", e.State.Player().Color)
		require.Equal(t, 1, e.State.Turn)
		require.Zero(t, gameMetric.Attacks)
		require.Contains(t, script.Transcript(), "Illegal attack")
	})

	t.Run("showing the mission and the map", func(t *testing.T) {
		e, script := newEngine(t, 6, game.NewSequenceRoller(),
			"2", "Preto", "Branco",
			"2", "3", "0")
		require.NoError(t, e.Setup(game.SetupFixed))

		e.Run()

		require.Contains(t, script.Said, "You hold 2 of 3 territories.")
		require.Contains(t, script.Transcript(), "Argelia")
		require.Equal(t, "Preto", e.State.Player().Color)
	})

	t.Run("turn limit", func(t *testing.T) {
		roller := game.NewSequenceRoller([]int{1, 1, 1}, []int{6, 6})
		gs := game.NewGameState(game.CreateMap(), game.NewStandardRules(), drawSource(6))
		gs.Roller = roller
		script := communication.NewScript(
			"2", "Preto", "Branco",
			"1", "Brasil", "Chile", "3", "2", "n")
		e := LocalEngine(gs, script, WithMaxTurns(1))
		require.NoError(t, e.Setup(game.SetupFixed))

		winner, _, _ := e.Run()

		require.Empty(t, winner)
		brasil, _ := e.State.Map.Find("Brasil")
		require.Equal(t, 6, brasil.Troops)
		require.Contains(t, script.Said, "Attack failed! Chile keeps 3 troops")
		require.Contains(t, script.Said, "Stopped after 1 turns with no winner.")
	})

	t.Run("closed input leaves the game", func(t *testing.T) {
		e, _ := newEngine(t, 6, game.NewSequenceRoller(), "2", "Preto", "Branco")
		require.NoError(t, e.Setup(game.SetupFixed))

		winner, _, battles := e.Run()

		require.Empty(t, winner)
		require.Empty(t, battles)
	})

	t.Run("players without an attack are skipped", func(t *testing.T) {
		// Azul joins first but holds nothing with fixed owners
		e, script := newEngine(t, 6, game.NewSequenceRoller(),
			"2", "Azul", "Preto",
			"4",
			"0")
		require.NoError(t, e.Setup(game.SetupFixed))

		winner, gameMetric, _ := e.Run()

		require.Empty(t, winner)
		require.Equal(t, 4, e.State.Turn)
		require.Equal(t, "Preto", e.State.Player().Color)
		require.Equal(t, 3, gameMetric.TotalTurns)
		require.Contains(t, script.Said, "Azul cannot attack and passes.")
		require.Contains(t, script.Said, "Preto passes.")
		require.Contains(t, script.Said, "Turn 2: Preto plays.")
		require.Contains(t, script.Said, "Turn 4: Preto plays.")
		require.NotContains(t, script.Said, "Turn 1: Azul plays.")
	})

	t.Run("no attack left ends the game", func(t *testing.T) {
		e, script := newEngine(t, 6, game.NewSequenceRoller(), "2", "Preto", "Branco")
		require.NoError(t, e.Setup(game.SetupFixed))
		for _, territory := range e.State.Map.Territories {
			territory.Troops = 1
		}

		winner, _, _ := e.Run()

		require.Empty(t, winner)
		require.Equal(t, 1, e.State.Turn)
		require.Contains(t, script.Said, "No player can attack. The game ends with no winner.")
		require.Empty(t, script.Lines)
	})
}
