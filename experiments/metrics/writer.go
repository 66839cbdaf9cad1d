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

// AgentConfig describes one search configuration taking part in an experiment.
type AgentConfig struct {
	ID         int
	Name       string // difficulty as written in the config
	Depth      int
	Goroutines int
}

type GameRecord struct {
	ID    int
	Dark  int // AgentConfig.ID
	Light int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <outputDir>/<name>/<timestamp> for the results of one run.
func NewWriter(outputDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outputDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	if err := writeCSV(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", file, err)
	}
	return nil
}

func writeCSV(out io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return err
	}
	// WriteAll flushes and reports any buffered write error.
	return writer.WriteAll(rows)
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
		})
	}
	return w.write("agent_configs.csv", []string{"id", "name", "depth", "goroutines"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Dark),
			strconv.Itoa(record.Light),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{"id", "dark", "light", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Leaves, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			strconv.FormatBool(record.Forced),
		})
	}
	header := []string{"game", "step", "player", "depth", "goroutines", "duration", "nodes", "leaves", "cutoffs", "forced"}
	return w.write("move_records.csv", header, rows)
}

// WriteSearchMetrics stores standalone search measurements, one per row.
func (w *Writer) WriteSearchMetrics(results []SearchMetric) error {
	rows := make([][]string, 0, len(results))
	for _, m := range results {
		rows = append(rows, []string{
			strconv.Itoa(m.Goroutines),
			strconv.Itoa(m.Depth),
			m.Duration.String(),
			strconv.FormatInt(m.Nodes, 10),
			strconv.FormatInt(m.Leaves, 10),
			strconv.FormatInt(m.Cutoffs, 10),
		})
	}
	header := []string{"goroutines", "depth", "duration", "nodes", "leaves", "cutoffs"}
	return w.write("search_metrics.csv", header, rows)
}
