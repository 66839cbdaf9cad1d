package game

import "fmt"

// Move is a single step of one piece. A move is a capture iff both deltas
// have magnitude 2; the captured piece sits on the midpoint.
type Move struct {
	Piece PieceID
	From  Square
	To    Square
}

func (m Move) IsCapture() bool {
	return abs(m.To.Row-m.From.Row) == 2 && abs(m.To.Col-m.From.Col) == 2
}

// Jumped returns the midpoint square of a capture.
func (m Move) Jumped() Square {
	return Square{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}
}

func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("#%d %s%s%s", m.Piece, m.From, sep, m.To)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
