package agent

import (
	"fmt"

	"checkers/game"
	"checkers/searcher"
)

type minimaxAgent struct {
	search *searcher.Minimax
}

// NewMinimaxAgent returns the automated opponent. A forced capture is played
// directly without searching; otherwise the search picks the move.
func NewMinimaxAgent(search *searcher.Minimax) Agent {
	return minimaxAgent{search: search}
}

// AutomatedTurn plays the active color's turn with a search of the given depth.
func AutomatedTurn(g *game.Game, depth int) (Turn, error) {
	return NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(depth))).Play(g)
}

func (a minimaxAgent) Name() string {
	return fmt.Sprintf("minimax(depth=%d)", a.search.Depth())
}

func (a minimaxAgent) Play(g *game.Game) (Turn, error) {
	color := g.Turn()
	turn := Turn{Color: color}
	if outcome := g.Outcome(); outcome != nil {
		turn.Outcome = outcome
		return turn, nil
	}

	var first game.Move
	if captures := g.Board().Captures(color); len(captures) > 0 {
		first = captures[0]
		turn.Metric.Forced = true
	} else {
		res := a.search.BestMove(g.Board(), color)
		if !res.Found {
			turn.Outcome = &game.Outcome{Kind: game.NoMovesLeft, Color: color}
			return turn, nil
		}
		first = res.Move
		turn.Metric = res.Metric
	}

	// The automated side always continues a chain.
	return playChain(g, turn, first, func(chain []game.Square) game.Square {
		return chain[0]
	})
}
