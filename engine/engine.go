package engine

import "checkers/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
