package engine

import (
	"testing"

	"checkers/agent"
	"checkers/game"
	"checkers/searcher"

	"github.com/stretchr/testify/require"
)

func TestLocalEngineRandomSelfPlay(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		e := LocalEngine(agent.NewRandomAgent(seed), agent.NewRandomAgent(seed+100))
		winner, gameMetric, moveMetrics := e.Run()

		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Len(t, e.Updates, gameMetric.TotalMoves)
		require.Equal(t, "dark", gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.LessOrEqual(t, gameMetric.TotalMoves, e.MaxTurns)

		if winner != "" {
			require.NotNil(t, e.Game.Outcome())
		} else {
			require.Equal(t, e.MaxTurns, gameMetric.TotalMoves)
		}

		// Players alternate, dark first.
		for i, update := range e.Updates {
			expected := game.Dark
			if i%2 == 1 {
				expected = game.Light
			}
			require.Equal(t, expected, update.Turn.Color)
			require.NotEmpty(t, update.Turn.Moves)
		}
	}
}

func TestLocalEngineSearchOutplaysRandom(t *testing.T) {
	light := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(4), searcher.WithMetrics()))
	e := LocalEngine(agent.NewRandomAgent(3), light)
	e.MaxTurns = 200

	winner, _, moveMetrics := e.Run()
	require.NotEqual(t, "dark", winner)
	require.GreaterOrEqual(t, e.Game.Board().Count(game.Light), e.Game.Board().Count(game.Dark))

	searched := 0
	for _, m := range moveMetrics {
		if m.Player == "light" && !m.Forced {
			searched++
			require.Equal(t, 4, m.Depth)
			require.Positive(t, m.Nodes)
		}
	}
	require.Positive(t, searched)
}

func TestLocalEngineFinishedPosition(t *testing.T) {
	b := game.NewEmptyBoard(nil)
	_, err := b.Place(game.Square{Row: 5, Col: 2}, game.Dark, false)
	require.NoError(t, err)

	e := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2), game.WithBoard(b))
	winner, gameMetric, moveMetrics := e.Run()
	require.Equal(t, "dark", winner)
	require.Zero(t, gameMetric.TotalMoves)
	require.Empty(t, moveMetrics)
}
