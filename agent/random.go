package agent

import (
	"checkers/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random legal move and picks follow-up
// jumps at random.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return "random"
}

func (a *randomAgent) Play(g *game.Game) (Turn, error) {
	turn := Turn{Color: g.Turn()}
	if outcome := g.Outcome(); outcome != nil {
		turn.Outcome = outcome
		return turn, nil
	}

	moves := g.Board().LegalMoves(g.Turn())
	first := moves[a.rng.Intn(len(moves))]
	return playChain(g, turn, first, func(chain []game.Square) game.Square {
		return chain[a.rng.Intn(len(chain))]
	})
}
