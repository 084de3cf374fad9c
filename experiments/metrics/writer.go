package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one searching agent taking part in an experiment.
type AgentConfig struct {
	ID    int `json:"id"`
	Depth int `json:"depth"` // Iterative deepening limit
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing You
	Agent2 int // AgentConfig.ID playing Them
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Setup struct {
	Name           string          `json:"name"`
	Matchups       [][]AgentConfig `json:"matchups"`
	NumGames       int             `json:"numGames"` // per matchup
	RandomOpenings int             `json:"randomOpenings"`
	Seed           uint64          `json:"seed"`
	StartTime      time.Time       `json:"startTime"`
	EndTime        time.Time       `json:"endTime"`
	Duration       time.Duration   `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir if needed and writes every file into it.
func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "score", "duration", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.FormatFloat(record.Score, 'g', -1, 64),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
