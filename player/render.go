package player

import (
	"fmt"
	"strconv"
	"strings"

	"checkers/game"
	"checkers/utils"
)

func symbol(p game.Piece) byte {
	s := byte('d')
	if p.Color == game.Light {
		s = 'l'
	}
	if p.King {
		s -= 'a' - 'A'
	}
	return s
}

// Render draws the board with row and column indices. Dark pieces are d/D,
// light pieces l/L, kings in upper case. Highlighted squares show as *.
func Render(b *game.Board, highlights ...game.Square) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < game.Size; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, " %d ", row)
		for col := 0; col < game.Size; col++ {
			sq := game.Square{Row: row, Col: col}
			c := byte(' ')
			if p, ok := b.PieceAt(sq); ok {
				c = symbol(p)
			} else if utils.FindIndex(highlights, sq) >= 0 {
				c = '*'
			} else if sq.Playable() {
				c = '.'
			}
			sb.WriteByte(' ')
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseSquare reads "row,col" or "row col".
func ParseSquare(s string) (game.Square, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return game.Square{}, fmt.Errorf("%w: expected \"row,col\", got %q", game.ErrInvalidSquare, s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Square{}, fmt.Errorf("%w: bad row %q", game.ErrInvalidSquare, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Square{}, fmt.Errorf("%w: bad column %q", game.ErrInvalidSquare, fields[1])
	}
	sq := game.Square{Row: row, Col: col}
	if !sq.Valid() {
		return game.Square{}, fmt.Errorf("%w: %s is off the board", game.ErrInvalidSquare, sq)
	}
	return sq, nil
}

func formatSquares(squares []game.Square) string {
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = fmt.Sprintf("%d,%d", sq.Row, sq.Col)
	}
	return strings.Join(parts, "  ")
}
