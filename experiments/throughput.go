package experiments

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment searches the opening position once per goroutine
// count at a fixed depth and reports what each search visited.
func RunThroughputExperiment(depth int, goroutines []int) []metrics.SearchMetric {
	board := game.NewBoard(nil)
	color := board.Rules().FirstPlayer()

	log.Info().Msgf("starting throughput experiment at depth %d...", depth)

	results := make([]metrics.SearchMetric, 0, len(goroutines))
	for _, n := range goroutines {
		m := searcher.NewMinimax(
			searcher.WithDepth(depth),
			searcher.WithGoroutines(n),
			searcher.WithMetrics(),
		)
		res := m.BestMove(board, color)
		results = append(results, res.Metric)

		rate := 0.0
		if secs := res.Metric.Duration.Seconds(); secs > 0 {
			rate = float64(res.Metric.Nodes) / secs
		}
		log.Info().Msgf("goroutines=%d: %d nodes in %s (%.0f nodes/s), best %s",
			n, res.Metric.Nodes, res.Metric.Duration, rate, res.Move)
	}

	log.Info().Msg("completed throughput experiment")
	return results
}
