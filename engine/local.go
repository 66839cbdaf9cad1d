package engine

import (
	"fmt"
	"time"

	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

type Update struct {
	Turn agent.Turn
	Hash game.StateHash
}

var _ Engine = (*Local)(nil)

// Local plays a game between two in-process agents.
type Local struct {
	Game     *game.Game
	Agents   map[game.Color]agent.Agent
	Updates  []Update
	MaxTurns int
}

func LocalEngine(dark, light agent.Agent, options ...game.Option) *Local {
	if dark == nil || light == nil {
		panic("need an agent for each color")
	}
	return &Local{
		Game: game.NewGame(options...),
		Agents: map[game.Color]agent.Agent{
			game.Dark:  dark,
			game.Light: light,
		},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Game.Turn().String(),
		StartTime:      start,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (dark) vs %s (light), %s is starting",
		e.Agents[game.Dark].Name(), e.Agents[game.Light].Name(), e.Game.Turn())

	for e.Game.Outcome() == nil && e.Game.TurnCount() < e.MaxTurns {
		color := e.Game.Turn()
		step := e.Game.TurnCount() + 1

		turn, err := e.Agents[color].Play(e.Game)
		if err != nil {
			panic(fmt.Errorf("%s played an illegal turn: %w", e.Agents[color].Name(), err))
		}

		e.Updates = append(e.Updates, Update{Turn: turn, Hash: e.Game.Board().Hash()})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       color.String(),
			SearchMetric: turn.Metric,
		})

		log.Debug().Msgf("turn %d: %s played %v", step, color, turn.Moves)
	}

	winner := ""
	if outcome := e.Game.Outcome(); outcome != nil {
		winner = outcome.Winner().String()
		log.Info().Msgf("game over after %d turns: %s", e.Game.TurnCount(), outcome)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.Game.TurnCount())
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = e.Game.TurnCount()
	return winner, gameMetric, moveMetrics
}
