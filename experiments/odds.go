package experiments

import (
	"fmt"

	"war/experiments/metrics"
	"war/game"

	"github.com/rs/zerolog/log"
)

const (
	MaxOddsTroops = 10 // Largest garrison on either side of the odds table
	OddsTrials    = 1000
)

// RunOddsExperiment plays trials battles for every pair of garrisons up to MaxOddsTroops, both
// sides always rolling the most dice and the attacker never stopping. It returns how often the
// attacker conquers.
func RunOddsExperiment(seed uint64, trials int) ([]metrics.OddsRecord, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}
	rules := game.NewStandardRules()
	roller := game.NewDiceRoller(game.NewSource(seed))

	log.Info().Msgf("starting odds experiment with %d trials per matchup...", trials)
	records := []metrics.OddsRecord{}
	for attackers := game.MinAttackTroops; attackers <= MaxOddsTroops; attackers++ {
		for defenders := 1; defenders <= MaxOddsTroops; defenders++ {
			record := metrics.OddsRecord{Attackers: attackers, Defenders: defenders, Trials: trials}
			for i := 0; i < trials; i++ {
				left, conquered, err := simulateBattle(attackers, defenders, rules, roller)
				if err != nil {
					return nil, err
				}
				if conquered {
					record.Conquests++
				}
				record.AttackersLeft += left
			}
			records = append(records, record)
		}
	}
	log.Info().Msgf("completed odds experiment with %d matchups", len(records))
	return records, nil
}

// simulateBattle fights to the end and returns the attacker's troops left.
func simulateBattle(attackers, defenders int, rules game.Rules, roller game.Roller) (int, bool, error) {
	attacker := &game.Territory{Name: "attacker", Color: "Preto", Troops: attackers}
	defender := &game.Territory{Name: "defender", Color: "Branco", Troops: defenders}
	b, err := game.NewBattle(attacker, defender, rules, roller)
	if err != nil {
		return 0, false, err
	}
	for {
		maxAttack, maxDefend := b.DiceLimits()
		if _, err := b.Fight(maxAttack, maxDefend); err != nil {
			return 0, false, err
		}
		if b.Phase == game.Concluded {
			return attacker.Troops, b.Conquered(), nil
		}
		if err := b.PressOn(); err != nil {
			return 0, false, err
		}
	}
}

// StoreOdds writes an odds table to a timestamped folder under dir.
func StoreOdds(dir string, records []metrics.OddsRecord) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create record writer: %w", err)
	}
	if err := writer.WriteOddsRecords(records); err != nil {
		return "", fmt.Errorf("failed to write odds records: %w", err)
	}
	log.Info().Msg("stored odds records")
	return writer.Dir(), nil
}
