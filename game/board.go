package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// Board owns every piece of one game. Pieces are indexed by id; a captured
// piece leaves a nil slot so its id is never handed out again.
type Board struct {
	rules  Rules
	pieces []*Piece
	grid   [Size][Size]PieceID
}

// NewEmptyBoard returns a board without pieces, for composing positions.
func NewEmptyBoard(rules Rules) *Board {
	if rules == nil {
		rules = NewStandardRules()
	}
	return &Board{rules: rules}
}

// NewBoard returns the standard starting position: 12 pieces per color on the
// playable squares of each color's three home rows.
func NewBoard(rules Rules) *Board {
	b := NewEmptyBoard(rules)
	for _, color := range []Color{Light, Dark} {
		for _, row := range b.rules.HomeRows(color) {
			for col := 0; col < Size; col++ {
				sq := Square{Row: row, Col: col}
				if !sq.Playable() {
					continue
				}
				if _, err := b.Place(sq, color, false); err != nil {
					panic(err)
				}
			}
		}
	}
	return b
}

func (b *Board) Rules() Rules {
	return b.rules
}

// Place puts a new piece on an empty playable square and returns its id.
func (b *Board) Place(sq Square, color Color, king bool) (PieceID, error) {
	if !sq.Playable() {
		return 0, fmt.Errorf("%w: %s is not playable", ErrInvalidSquare, sq)
	}
	if b.grid[sq.Row][sq.Col] != 0 {
		return 0, fmt.Errorf("%w: %s is occupied", ErrInvalidSquare, sq)
	}
	id := PieceID(len(b.pieces) + 1)
	b.pieces = append(b.pieces, &Piece{ID: id, Square: sq, Color: color, King: king})
	b.grid[sq.Row][sq.Col] = id
	return id, nil
}

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	id := b.grid[sq.Row][sq.Col]
	if id == 0 {
		return Piece{}, false
	}
	return *b.pieces[id-1], true
}

func (b *Board) Piece(id PieceID) (Piece, bool) {
	p := b.lookup(id)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (b *Board) lookup(id PieceID) *Piece {
	if id <= 0 || int(id) > len(b.pieces) {
		return nil
	}
	return b.pieces[id-1]
}

// mustLookup panics on an unknown id: callers validate ids before mutating.
func (b *Board) mustLookup(id PieceID) *Piece {
	p := b.lookup(id)
	if p == nil {
		panic(fmt.Errorf("%w: piece %d", ErrInvalidReference, id))
	}
	return p
}

// MovePiece relocates a piece to an empty playable square.
func (b *Board) MovePiece(id PieceID, to Square) {
	p := b.mustLookup(id)
	if !to.Playable() {
		panic(fmt.Errorf("%w: %s is not playable", ErrInvalidSquare, to))
	}
	if occupant := b.grid[to.Row][to.Col]; occupant != 0 && occupant != id {
		panic(fmt.Errorf("%w: %s is occupied by piece %d", ErrInvalidSquare, to, occupant))
	}
	b.grid[p.Square.Row][p.Square.Col] = 0
	p.Square = to
	b.grid[to.Row][to.Col] = id
}

func (b *Board) RemovePiece(id PieceID) {
	p := b.mustLookup(id)
	b.grid[p.Square.Row][p.Square.Col] = 0
	b.pieces[id-1] = nil
}

// Promote crowns a piece. Crowning a king is a no-op.
func (b *Board) Promote(id PieceID) {
	b.mustLookup(id).King = true
}

// restore puts a piece back in exactly the recorded state, reinserting it if
// it had been removed.
func (b *Board) restore(prior Piece) {
	if cur := b.lookup(prior.ID); cur != nil {
		b.grid[cur.Square.Row][cur.Square.Col] = 0
	}
	p := prior
	b.pieces[prior.ID-1] = &p
	b.grid[prior.Square.Row][prior.Square.Col] = prior.ID
}

// Pieces returns the live pieces of color in ascending id order.
func (b *Board) Pieces(color Color) []Piece {
	var pieces []Piece
	for _, p := range b.pieces {
		if p != nil && p.Color == color {
			pieces = append(pieces, *p)
		}
	}
	return pieces
}

func (b *Board) Count(color Color) int {
	n := 0
	for _, p := range b.pieces {
		if p != nil && p.Color == color {
			n++
		}
	}
	return n
}

// Clone returns an independent copy sharing only the rules.
func (b *Board) Clone() *Board {
	c := &Board{
		rules:  b.rules,
		pieces: make([]*Piece, len(b.pieces)),
		grid:   b.grid,
	}
	for i, p := range b.pieces {
		if p != nil {
			cp := *p
			c.pieces[i] = &cp
		}
	}
	return c
}

// Equal compares every piece's id, square, color and king flag.
func (b *Board) Equal(other *Board) bool {
	if len(b.pieces) != len(other.pieces) || b.grid != other.grid {
		return false
	}
	for i, p := range b.pieces {
		q := other.pieces[i]
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && *p != *q {
			return false
		}
	}
	return true
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	for _, p := range b.pieces {
		if p == nil {
			continue
		}
		king := int64(0)
		if p.King {
			king = 1
		}
		binary.Write(hasher, binary.LittleEndian, int64(p.ID))
		binary.Write(hasher, binary.LittleEndian, int64(p.Square.Row*Size+p.Square.Col))
		binary.Write(hasher, binary.LittleEndian, int64(p.Color))
		binary.Write(hasher, binary.LittleEndian, king)
	}

	return StateHash(hasher.Sum64())
}
