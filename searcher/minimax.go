package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"sync"
)

type Option func(m *Minimax)

var _ Searcher = (*Minimax)(nil)

// Minimax is a depth-limited minimax search with alpha-beta pruning. It
// explores on the caller's board through a journal of reversible steps.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines splits the root candidates across n workers, each on its
// own copy of the board with its own journal.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// BestMove searches at the configured depth.
func (m *Minimax) BestMove(b *game.Board, color game.Color) Result {
	return m.Search(b, color, m.depth)
}

// Search returns the move maximizing color's evaluation after depth plies.
// Ties go to the first candidate in generation order.
func (m *Minimax) Search(b *game.Board, color game.Color, depth int) Result {
	m.metrics.Start(m.goroutines, depth)

	var score int
	var move game.Move
	var found bool
	if m.goroutines > 1 && depth > 1 {
		score, move, found = m.searchParallel(b, color, depth)
	} else {
		s := m.newSearch(b, color)
		score, move, found = s.minimax(depth, true, -ScoreInf, ScoreInf)
	}

	return Result{
		Move:   move,
		Score:  score,
		Found:  found,
		Metric: m.metrics.Complete(),
	}
}

func (m *Minimax) newSearch(b *game.Board, color game.Color) *search {
	return &search{
		board:    b,
		color:    color,
		evaluate: m.evaluate,
		metrics:  m.metrics,
	}
}

// searchParallel scores every root candidate with a full window. Alpha-beta
// is exact under a full window, so the chosen move matches the sequential
// search.
func (m *Minimax) searchParallel(b *game.Board, color game.Color, depth int) (int, game.Move, bool) {
	root := m.newSearch(b, color)
	if root.isLeaf(depth, true) {
		return root.leaf(), game.Move{}, false
	}
	moves := b.AllMoves(color)
	m.metrics.AddNode()

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	scores := make([]int, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			s := m.newSearch(b.Clone(), color)
			for idx := range task {
				mark := s.board.Simulate(&s.journal, moves[idx])
				scores[idx], _, _ = s.minimax(depth-1, false, -ScoreInf, ScoreInf)
				s.board.Rollback(&s.journal, mark)
			}
		}()
	}
	wg.Wait()

	bestIndex := 0
	for i, score := range scores {
		if score > scores[bestIndex] {
			bestIndex = i
		}
	}
	return scores[bestIndex], moves[bestIndex], true
}

// search is the state of one in-flight search. The journal is never shared.
type search struct {
	board    *game.Board
	journal  game.Journal
	color    game.Color // the maximizing side
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func (s *search) toMove(maximizing bool) game.Color {
	if maximizing {
		return s.color
	}
	return s.color.Opponent()
}

func (s *search) isLeaf(depth int, maximizing bool) bool {
	return depth <= 0 || game.Terminal(s.board, s.toMove(maximizing)) != nil
}

func (s *search) leaf() int {
	s.metrics.AddLeaf()
	return s.evaluate(s.board, s.color)
}

// minimax explores one ply per level. A capture chain is not expanded as a
// single move: each jump is its own ply.
func (s *search) minimax(depth int, maximizing bool, alpha, beta int) (int, game.Move, bool) {
	s.metrics.AddNode()
	if s.isLeaf(depth, maximizing) {
		return s.leaf(), game.Move{}, false
	}

	var bestMove game.Move
	found := false
	best := ScoreInf
	if maximizing {
		best = -ScoreInf
	}

	for _, move := range s.board.AllMoves(s.toMove(maximizing)) {
		mark := s.board.Simulate(&s.journal, move)
		score, _, _ := s.minimax(depth-1, !maximizing, alpha, beta)
		s.board.Rollback(&s.journal, mark)

		if maximizing {
			if score > best || !found {
				best, bestMove, found = score, move, true
			}
			alpha = max(alpha, score)
		} else {
			if score < best || !found {
				best, bestMove, found = score, move, true
			}
			beta = min(beta, score)
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best, bestMove, found
}
