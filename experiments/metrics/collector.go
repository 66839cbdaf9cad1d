package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int64
	Leaves     int64
	Cutoffs    int64
	Forced     bool // move came from the forced-capture shortcut, no search ran
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
