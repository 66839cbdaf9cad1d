package agent

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func sq(row, col int) game.Square {
	return game.Square{Row: row, Col: col}
}

func place(t *testing.T, b *game.Board, row, col int, color game.Color, king bool) game.PieceID {
	t.Helper()
	id, err := b.Place(sq(row, col), color, king)
	require.NoError(t, err)
	return id
}

// chainForLight sets up a double jump for Light's piece at (1,2).
func chainForLight(t *testing.T) (*game.Game, game.PieceID) {
	b := game.NewEmptyBoard(nil)
	mover := place(t, b, 1, 2, game.Light, false)
	place(t, b, 2, 3, game.Dark, false)
	place(t, b, 4, 5, game.Dark, false)
	place(t, b, 7, 0, game.Dark, false)
	return game.NewGame(game.WithBoard(b), game.WithTurn(game.Light)), mover
}

func TestMinimaxAgentForcedCapture(t *testing.T) {
	g, mover := chainForLight(t)

	turn, err := AutomatedTurn(g, 6)
	require.NoError(t, err)
	require.True(t, turn.Metric.Forced, "a forced capture skips the search")
	require.Nil(t, turn.Outcome)
	require.Equal(t, []game.Move{
		{Piece: mover, From: sq(1, 2), To: sq(3, 4)},
		{Piece: mover, From: sq(3, 4), To: sq(5, 6)},
	}, turn.Moves, "the automated side always continues the chain")
	require.Equal(t, game.ChainAvailable, turn.Results[0].Status)
	require.Equal(t, game.TurnComplete, turn.Results[1].Transition)
	require.Equal(t, 1, g.Board().Count(game.Dark))
	require.Equal(t, game.Dark, g.Turn())
}

func TestMinimaxAgentSearchesQuietPositions(t *testing.T) {
	g := game.NewGame()

	turn, err := AutomatedTurn(g, 2)
	require.NoError(t, err)
	require.False(t, turn.Metric.Forced)
	require.Len(t, turn.Moves, 1)
	require.Equal(t, game.Dark, turn.Color)
	require.Equal(t, game.Light, g.Turn())
	require.Equal(t, 1, g.TurnCount())
}

func TestMinimaxAgentGameOver(t *testing.T) {
	b := game.NewEmptyBoard(nil)
	place(t, b, 5, 2, game.Dark, false)
	g := game.NewGame(game.WithBoard(b), game.WithTurn(game.Light))
	before := b.Clone()

	turn, err := AutomatedTurn(g, 4)
	require.NoError(t, err)
	require.Empty(t, turn.Moves)
	require.NotNil(t, turn.Outcome)
	require.Equal(t, game.Dark, turn.Outcome.Winner())
	require.True(t, before.Equal(g.Board()))
}

func TestRandomAgentHonorsMandatoryCapture(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g, mover := chainForLight(t)
		place(t, g.Board(), 0, 7, game.Light, false) // has plain moves only

		turn, err := NewRandomAgent(seed).Play(g)
		require.NoError(t, err)
		require.NotEmpty(t, turn.Moves)
		require.True(t, turn.Moves[0].IsCapture())
		require.Equal(t, mover, turn.Moves[0].Piece)
		require.Equal(t, game.Dark, g.Turn())
	}
}

func TestAgentNames(t *testing.T) {
	g := game.NewGame()
	require.Equal(t, "random", NewRandomAgent(1).Name())

	turn, err := NewRandomAgent(1).Play(g)
	require.NoError(t, err)
	require.Len(t, turn.Moves, 1)
}
