package game

import "fmt"

// StepOutcome describes what a single applied step did to the board.
type StepOutcome struct {
	Move     Move
	Captured *Piece
	// Promoted is set when the mover was crowned by this step, either by
	// reaching its farthest row or by regicide.
	Promoted bool
	Regicide bool
}

// EndsTurn reports whether the step forbids any further chaining.
func (o StepOutcome) EndsTurn() bool {
	return o.Promoted || o.Regicide
}

// step relocates a piece, removes a jumped enemy and applies promotion and
// regicide. Both the turn controller and the search go through here.
func (b *Board) step(id PieceID, to Square) StepOutcome {
	p := b.mustLookup(id)
	out := StepOutcome{Move: Move{Piece: id, From: p.Square, To: to}}
	wasKing := p.King

	b.MovePiece(id, to)

	if out.Move.IsCapture() {
		mid := out.Move.Jumped()
		jumped := b.grid[mid.Row][mid.Col]
		if jumped == 0 {
			panic(fmt.Errorf("%w: capture %s jumps an empty square", ErrInvalidMove, out.Move))
		}
		captured := *b.pieces[jumped-1]
		b.RemovePiece(jumped)
		out.Captured = &captured
		out.Regicide = captured.King
	}

	if !wasKing && (to.Row == b.rules.PromotionRow(p.Color) || out.Regicide) {
		b.Promote(id)
		out.Promoted = true
	}
	return out
}

// Journal records the prior state of every piece touched by simulated moves
// so they can be rolled back exactly. A journal belongs to one search.
type Journal struct {
	entries []Piece
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Simulate applies m after recording the mover and, for a capture, the
// captured piece. The returned mark is passed to Rollback.
func (b *Board) Simulate(j *Journal, m Move) int {
	mark := len(j.entries)
	mover := b.mustLookup(m.Piece)
	j.entries = append(j.entries, *mover)
	if m.IsCapture() {
		mid := m.Jumped()
		if jumped := b.grid[mid.Row][mid.Col]; jumped != 0 {
			j.entries = append(j.entries, *b.pieces[jumped-1])
		}
	}
	b.step(m.Piece, m.To)
	return mark
}

// Rollback pops the journal down to mark, restoring pieces in strict reverse
// order: the captured piece comes back before the mover.
func (b *Board) Rollback(j *Journal, mark int) {
	for len(j.entries) > mark {
		last := len(j.entries) - 1
		prior := j.entries[last]
		j.entries = j.entries[:last]
		b.restore(prior)
	}
}
