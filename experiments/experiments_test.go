package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"war/experiments/metrics"
	"war/game"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	dir, err := Store(t.TempDir(),
		metrics.GameMetric{Players: 2, Winner: "Preto", Attacks: 1},
		[]metrics.BattleMetric{{Turn: 1, Player: "Preto", Attacker: "Brasil", Defender: "Chile", Conquered: true}},
	)

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "game_records.csv"))
	battles, err := os.ReadFile(filepath.Join(dir, "battle_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(battles), "Brasil,Chile")
}

func TestRunOddsExperiment(t *testing.T) {
	records, err := RunOddsExperiment(1, 50)
	require.NoError(t, err)

	require.Len(t, records, (MaxOddsTroops-game.MinAttackTroops+1)*MaxOddsTroops)
	for _, r := range records {
		require.Equal(t, 50, r.Trials)
		require.GreaterOrEqual(t, r.Conquests, 0)
		require.LessOrEqual(t, r.Conquests, r.Trials)
		// Every trial leaves at least one attacker behind
		require.GreaterOrEqual(t, r.AttackersLeft, r.Trials)
	}

	// Ten attackers against a single defender lose only on a long run of ties
	last := records[len(records)-MaxOddsTroops]
	require.Equal(t, MaxOddsTroops, last.Attackers)
	require.Equal(t, 1, last.Defenders)
	require.Greater(t, last.ConquestRate(), 0.9)

	dir, err := StoreOdds(t.TempDir(), records)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "odds_records.csv"))

	_, err = RunOddsExperiment(1, 0)
	require.Error(t, err)
}

func TestSimulateBattleSameSeed(t *testing.T) {
	rules := game.NewStandardRules()
	left1, won1, err := simulateBattle(5, 5, rules, game.NewDiceRoller(game.NewSource(99)))
	require.NoError(t, err)
	left2, won2, err := simulateBattle(5, 5, rules, game.NewDiceRoller(game.NewSource(99)))
	require.NoError(t, err)

	require.Equal(t, left1, left2)
	require.Equal(t, won1, won2)
}
