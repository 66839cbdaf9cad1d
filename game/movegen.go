package game

import (
	"fmt"

	"checkers/utils"
)

var columnSteps = [2]int{-1, 1}

// rowSteps returns the row directions a piece may move in.
func (b *Board) rowSteps(p *Piece) []int {
	if p.King {
		return []int{-1, 1}
	}
	return []int{b.rules.Forward(p.Color)}
}

// Destinations computes the raw plain-move and capture destinations of a
// piece, without any mandatory-capture filtering.
func (b *Board) Destinations(id PieceID) (moves, captures []Square) {
	p := b.lookup(id)
	if p == nil {
		panic(fmt.Errorf("%w: piece %d", ErrInvalidReference, id))
	}
	for _, dRow := range b.rowSteps(p) {
		for _, dCol := range columnSteps {
			next := p.Square.offset(dRow, dCol)
			if !next.Playable() {
				continue
			}
			occupant := b.grid[next.Row][next.Col]
			if occupant == 0 {
				moves = append(moves, next)
				continue
			}
			if b.pieces[occupant-1].Color == p.Color {
				continue
			}
			landing := next.offset(dRow, dCol)
			if landing.Playable() && b.grid[landing.Row][landing.Col] == 0 {
				captures = append(captures, landing)
			}
		}
	}
	return moves, captures
}

// PieceDestinations applies the per-piece rule: a piece with a capture
// available may not make a plain move.
func (b *Board) PieceDestinations(id PieceID) []Square {
	moves, captures := b.Destinations(id)
	if len(captures) > 0 {
		return captures
	}
	return moves
}

// CaptureDestinations returns only the capture landings of a piece.
func (b *Board) CaptureDestinations(id PieceID) []Square {
	_, captures := b.Destinations(id)
	return captures
}

// HasCapture reports whether any piece of color can capture.
func (b *Board) HasCapture(color Color) bool {
	for _, p := range b.pieces {
		if p == nil || p.Color != color {
			continue
		}
		if _, captures := b.Destinations(p.ID); len(captures) > 0 {
			return true
		}
	}
	return false
}

// Captures lists every capture available to color, in ascending piece id.
func (b *Board) Captures(color Color) []Move {
	var moves []Move
	for _, p := range b.pieces {
		if p == nil || p.Color != color {
			continue
		}
		for _, to := range b.CaptureDestinations(p.ID) {
			moves = append(moves, Move{Piece: p.ID, From: p.Square, To: to})
		}
	}
	return moves
}

// AllMoves enumerates every (piece, destination) pair of color using the
// per-piece filter, in ascending piece id.
func (b *Board) AllMoves(color Color) []Move {
	var moves []Move
	for _, p := range b.pieces {
		if p == nil || p.Color != color {
			continue
		}
		for _, to := range b.PieceDestinations(p.ID) {
			moves = append(moves, Move{Piece: p.ID, From: p.Square, To: to})
		}
	}
	return moves
}

// LegalMoves enumerates the moves color may actually play this turn: only
// captures when any capture exists.
func (b *Board) LegalMoves(color Color) []Move {
	if captures := b.Captures(color); len(captures) > 0 {
		return captures
	}
	return b.AllMoves(color)
}

func (b *Board) HasMoves(color Color) bool {
	for _, p := range b.pieces {
		if p == nil || p.Color != color {
			continue
		}
		if moves, captures := b.Destinations(p.ID); len(moves)+len(captures) > 0 {
			return true
		}
	}
	return false
}

func containsSquare(squares []Square, sq Square) bool {
	return utils.FindIndex(squares, sq) >= 0
}
