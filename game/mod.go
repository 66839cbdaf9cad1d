package game

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

type Color int

const (
	Dark Color = iota
	Light
)

func (c Color) Opponent() Color {
	if c == Dark {
		return Light
	}
	return Dark
}

func (c Color) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor accepts "dark" or "light".
func ParseColor(s string) (Color, error) {
	switch s {
	case "dark", "Dark", "d":
		return Dark, nil
	case "light", "Light", "l":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown color %q", s)
}

// Square is a board coordinate. Row 0 is Light's back row.
type Square struct {
	Row int
	Col int
}

func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// Playable reports whether pieces may ever stand on s.
func (s Square) Playable() bool {
	return s.Valid() && (s.Row+s.Col)%2 == 1
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

func (s Square) offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// PieceID identifies a piece for the lifetime of a board. IDs start at 1 and
// are never reused after a capture.
type PieceID int

type Piece struct {
	ID     PieceID
	Square Square
	Color  Color
	King   bool
}

// Evaluates the board from color's perspective; larger is better for color.
type Evaluate func(b *Board, color Color) int
