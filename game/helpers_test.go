package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

func place(t *testing.T, b *Board, row, col int, color Color, king bool) PieceID {
	t.Helper()
	id, err := b.Place(sq(row, col), color, king)
	require.NoError(t, err)
	return id
}

func pieceOn(t *testing.T, b *Board, row, col int) Piece {
	t.Helper()
	p, ok := b.PieceAt(sq(row, col))
	require.True(t, ok, "expected a piece on %s", sq(row, col))
	return p
}
