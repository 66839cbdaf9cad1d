package metrics

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriterCreatesRunDirectory(t *testing.T) {
	out := t.TempDir()
	w, err := NewWriter(out, "depth")
	require.NoError(t, err)

	rel, err := filepath.Rel(out, w.Dir())
	require.NoError(t, err)
	require.Equal(t, "depth", filepath.Dir(rel))
	require.DirExists(t, w.Dir())
}

func TestWriterRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Name: "easy", Depth: 4, Goroutines: 1},
		{ID: 2, Name: "6", Depth: 6, Goroutines: 4},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "name", "depth", "goroutines"},
		{"1", "easy", "4", "1"},
		{"2", "6", "6", "4"},
	}, rows)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID:    1,
		Dark:  2,
		Light: 1,
		GameMetric: GameMetric{
			StartingPlayer: "dark",
			Winner:         "light",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     42,
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "2", "1", "dark", "light", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "42"}, rows[1])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:   3,
			Player: "light",
			SearchMetric: SearchMetric{
				Goroutines: 1,
				Depth:      4,
				Duration:   time.Millisecond,
				Nodes:      100,
				Leaves:     60,
				Cutoffs:    7,
			},
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "3", "light", "4", "1", "1ms", "100", "60", "7", "false"}, rows[1])
}

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.Start(2, 4)
	c.AddNode()
	c.AddNode()
	c.AddLeaf()
	c.AddCutoff()

	m := c.Complete()
	require.Equal(t, 2, m.Goroutines)
	require.Equal(t, 4, m.Depth)
	require.EqualValues(t, 2, m.Nodes)
	require.EqualValues(t, 1, m.Leaves)
	require.EqualValues(t, 1, m.Cutoffs)

	c.Start(1, 2)
	require.Zero(t, c.Complete().Nodes)

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSVReportsWriteErrors(t *testing.T) {
	err := writeCSV(failingWriter{}, []string{"id"}, [][]string{{"1"}})
	require.ErrorContains(t, err, "disk full")
}

func TestWriterReportsMissingDirectory(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(w.Dir()))

	require.Error(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1}}))
	require.Error(t, w.WriteSearchMetrics(nil))
}
