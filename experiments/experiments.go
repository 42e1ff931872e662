package experiments

import (
	"fmt"

	"war/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Store writes the records of a finished game to a timestamped folder under dir and returns
// that folder.
func Store(dir string, gameMetric metrics.GameMetric, battleMetrics []metrics.BattleMetric) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create record writer: %w", err)
	}

	gameRecords := []metrics.GameRecord{{ID: 1, GameMetric: gameMetric}}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	battleRecords := make([]metrics.BattleRecord, len(battleMetrics))
	for i, bm := range battleMetrics {
		battleRecords[i] = metrics.BattleRecord{Game: 1, BattleMetric: bm}
	}
	if err := writer.WriteBattleRecords(battleRecords); err != nil {
		return "", fmt.Errorf("failed to write battle records: %w", err)
	}
	log.Info().Msgf("stored %d battle records", len(battleRecords))

	return writer.Dir(), nil
}
