package game

import "fmt"

type OutcomeKind int

const (
	// Win: the opponent of Color has no pieces left.
	Win OutcomeKind = iota
	// NoMovesLeft: Color is to move and has no legal destination.
	NoMovesLeft
)

type Outcome struct {
	Kind  OutcomeKind
	Color Color
}

// Winner returns the winning color. A side that cannot move loses.
func (o Outcome) Winner() Color {
	if o.Kind == NoMovesLeft {
		return o.Color.Opponent()
	}
	return o.Color
}

func (o Outcome) String() string {
	if o.Kind == NoMovesLeft {
		return fmt.Sprintf("%s has no moves left, %s wins", o.Color, o.Winner())
	}
	return fmt.Sprintf("%s wins", o.Color)
}

// Terminal returns the outcome of the position with toMove to play, or nil
// if the game goes on.
func Terminal(b *Board, toMove Color) *Outcome {
	if b.Count(Light) == 0 {
		return &Outcome{Kind: Win, Color: Dark}
	}
	if b.Count(Dark) == 0 {
		return &Outcome{Kind: Win, Color: Light}
	}
	if !b.HasMoves(toMove) {
		return &Outcome{Kind: NoMovesLeft, Color: toMove}
	}
	return nil
}

// EvaluateMaterial is the piece-count differential from color's perspective.
func EvaluateMaterial(b *Board, color Color) int {
	return b.Count(color) - b.Count(color.Opponent())
}
