package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// Turn is everything an agent did during one turn of the game.
type Turn struct {
	Color   game.Color
	Moves   []game.Move
	Results []game.Result
	// Outcome is set when the game was already over, so nothing was played.
	Outcome *game.Outcome
	Metric  metrics.SearchMetric
}

type Agent interface {
	Name() string
	// Play performs one complete turn for the active color, including any
	// capture chain.
	Play(g *game.Game) (Turn, error)
}

// playChain applies first and then keeps capturing with the same piece,
// letting pick choose among the available chain captures.
func playChain(g *game.Game, turn Turn, first game.Move, pick func([]game.Square) game.Square) (Turn, error) {
	res, err := g.ApplyMove(first.Piece, first.To)
	if err != nil {
		return turn, err
	}
	turn.Moves = append(turn.Moves, res.Move)
	turn.Results = append(turn.Results, res)

	for res.Status == game.ChainAvailable {
		res, err = g.ContinueChain(first.Piece, pick(res.Chain))
		if err != nil {
			return turn, err
		}
		turn.Moves = append(turn.Moves, res.Move)
		turn.Results = append(turn.Results, res)
	}
	return turn, nil
}
