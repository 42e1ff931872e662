package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type BattleRecord struct {
	Game int // GameRecord.ID
	BattleMetric
}

// OddsRecord counts the outcomes of simulated battles between two garrisons.
type OddsRecord struct {
	Attackers     int
	Defenders     int
	Trials        int
	Conquests     int
	AttackersLeft int // Summed over all trials
}

// ConquestRate is the share of trials the attacker won.
func (r OddsRecord) ConquestRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Conquests) / float64(r.Trials)
}

type Writer struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		create:  createFile,
	}, nil
}

// Dir is the directory the records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "players", "setup", "seed", "winner", "start_time", "end_time", "duration", "turns", "attacks", "conquests"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Players),
			record.Setup,
			strconv.FormatUint(record.Seed, 10),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.Conquests),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	header := []string{"game", "turn", "player", "attacker", "defender", "defender_color", "rounds", "attacker_losses", "defender_losses", "conquered", "moved", "mission_completed"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			record.Player,
			record.Attacker,
			record.Defender,
			record.DefenderColor,
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.AttackerLosses),
			strconv.Itoa(record.DefenderLosses),
			strconv.FormatBool(record.Conquered),
			strconv.Itoa(record.Moved),
			strconv.FormatBool(record.MissionCompleted),
		}
	}
	return w.write("battle_records.csv", header, rows)
}

func (w *Writer) WriteOddsRecords(records []OddsRecord) error {
	header := []string{"attackers", "defenders", "trials", "conquests", "conquest_rate", "mean_attackers_left"}
	rows := make([][]string, len(records))
	for i, record := range records {
		meanLeft := 0.0
		if record.Trials > 0 {
			meanLeft = float64(record.AttackersLeft) / float64(record.Trials)
		}
		rows[i] = []string{
			strconv.Itoa(record.Attackers),
			strconv.Itoa(record.Defenders),
			strconv.Itoa(record.Trials),
			strconv.Itoa(record.Conquests),
			strconv.FormatFloat(record.ConquestRate(), 'f', 4, 64),
			strconv.FormatFloat(meanLeft, 'f', 2, 64),
		}
	}
	return w.write("odds_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := w.create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
