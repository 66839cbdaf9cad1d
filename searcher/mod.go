package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// ScoreInf bounds every evaluation; the material differential never gets
// anywhere near it.
const ScoreInf = 1 << 30

// Searcher picks a move for color on b. Implementations must leave b exactly
// as they found it.
type Searcher interface {
	BestMove(b *game.Board, color game.Color) Result
}

type Result struct {
	Move   game.Move
	Score  int
	Found  bool // false when color has nothing to play
	Metric metrics.SearchMetric
}
