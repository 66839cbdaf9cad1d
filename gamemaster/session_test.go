package gamemaster

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func sq(row, col int) game.Square {
	return game.Square{Row: row, Col: col}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(1)
	s := m.NewSession(2, game.Dark)
	require.NotEmpty(t, s.ID)
	require.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	require.Same(t, s, got)

	other := m.NewSession(2, game.Light)
	require.NotEqual(t, s.ID, other.ID)
	require.Equal(t, 2, m.Len())

	require.NoError(t, m.Delete(s.ID))
	_, err = m.Get(s.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, m.Delete(s.ID), ErrSessionNotFound)
	require.Equal(t, 1, m.Len())
}

func TestSessionHumanThenComputer(t *testing.T) {
	s := NewManager(1).NewSession(2, game.Dark)

	_, err := s.Reply()
	require.ErrorIs(t, err, ErrNotComputerTurn)

	dests, err := s.Select(sq(5, 0))
	require.NoError(t, err)
	require.Equal(t, []game.Square{sq(4, 1)}, dests)

	res, err := s.Move(sq(5, 0), sq(4, 1))
	require.NoError(t, err)
	require.Equal(t, game.Applied, res.Status)

	_, err = s.Move(sq(4, 1), sq(3, 2))
	require.ErrorIs(t, err, ErrNotHumanTurn)

	turn, err := s.Reply()
	require.NoError(t, err)
	require.Equal(t, game.Light, turn.Color)
	require.NotEmpty(t, turn.Moves)

	view := s.Snapshot()
	require.Equal(t, game.Dark, view.Turn)
	require.Equal(t, game.AwaitingSelection, view.Phase)
	require.Nil(t, view.Outcome)
	require.Len(t, view.History, 1+len(turn.Moves))
}

func TestSessionComputerOpensAsDark(t *testing.T) {
	s := NewManager(1).NewSession(2, game.Light)
	require.Equal(t, game.Dark, s.ComputerColor())

	for _, at := range []game.Square{sq(2, 1), sq(5, 0)} {
		dests, err := s.Select(at)
		require.ErrorIs(t, err, ErrNotHumanTurn)
		require.Nil(t, dests)
	}
	view := s.Snapshot()
	require.Equal(t, game.AwaitingSelection, view.Phase)
	require.Zero(t, view.Selected)

	turn, err := s.Reply()
	require.NoError(t, err)
	require.Equal(t, game.Dark, turn.Color)
	require.Equal(t, game.Light, s.Snapshot().Turn)
}

func TestSessionRejectsEmptySquare(t *testing.T) {
	s := NewManager(1).NewSession(2, game.Dark)

	_, err := s.Select(sq(4, 1))
	require.ErrorIs(t, err, ErrEmptySquare)
	_, err = s.Move(sq(4, 1), sq(3, 2))
	require.ErrorIs(t, err, ErrEmptySquare)
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	s := NewManager(1).NewSession(2, game.Dark)
	view := s.Snapshot()
	view.Board.RemovePiece(1)

	_, ok := s.Snapshot().Board.Piece(1)
	require.True(t, ok)
}

func TestSessionCaptureChain(t *testing.T) {
	b := game.NewEmptyBoard(nil)
	for _, p := range []struct {
		square game.Square
		color  game.Color
	}{
		{sq(6, 1), game.Dark},
		{sq(5, 2), game.Light},
		{sq(3, 4), game.Light},
		{sq(0, 7), game.Light},
	} {
		_, err := b.Place(p.square, p.color, false)
		require.NoError(t, err)
	}
	s := NewManager(1).NewSession(2, game.Dark, game.WithBoard(b))

	_, err := s.ContinueChain(sq(2, 5))
	require.ErrorIs(t, err, game.ErrNotChaining)

	res, err := s.Move(sq(6, 1), sq(4, 3))
	require.NoError(t, err)
	require.Equal(t, game.ChainAvailable, res.Status)
	require.Equal(t, []game.Square{sq(2, 5)}, res.Chain)
	require.Equal(t, game.AwaitingChainDecision, s.Snapshot().Phase)

	res, err = s.ContinueChain(sq(2, 5))
	require.NoError(t, err)
	require.Equal(t, game.TurnComplete, res.Transition)

	view := s.Snapshot()
	require.Equal(t, game.Light, view.Turn)
	require.Equal(t, 1, view.Board.Count(game.Light))
}

func TestSessionEndChainEarly(t *testing.T) {
	b := game.NewEmptyBoard(nil)
	_, err := b.Place(sq(6, 1), game.Dark, false)
	require.NoError(t, err)
	for _, at := range []game.Square{sq(5, 2), sq(3, 4), sq(0, 7)} {
		_, err := b.Place(at, game.Light, false)
		require.NoError(t, err)
	}
	s := NewManager(1).NewSession(2, game.Dark, game.WithBoard(b))

	require.ErrorIs(t, s.EndChain(), game.ErrNotChaining)

	_, err = s.Move(sq(6, 1), sq(4, 3))
	require.NoError(t, err)
	require.NoError(t, s.EndChain())

	view := s.Snapshot()
	require.Equal(t, game.Light, view.Turn)
	require.Equal(t, 2, view.Board.Count(game.Light))
}
