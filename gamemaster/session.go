package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"checkers/agent"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrEmptySquare     = errors.New("no piece on square")
	ErrNotComputerTurn = errors.New("not the computer's turn")
	ErrNotHumanTurn    = errors.New("not the human's turn")
)

// Session serializes all access to one game: exactly one turn is in flight
// at a time.
type Session struct {
	mu        sync.Mutex
	ID        string
	Human     game.Color
	Depth     int
	game      *game.Game
	computer  agent.Agent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View is a copy of the session state for rendering.
type View struct {
	Board    *game.Board
	Turn     game.Color
	Phase    game.Phase
	Selected game.PieceID
	Outcome  *game.Outcome
	History  []game.Move
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, _ := s.game.Selected()
	return View{
		Board:    s.game.Board().Clone(),
		Turn:     s.game.Turn(),
		Phase:    s.game.Phase(),
		Selected: selected,
		Outcome:  s.game.Outcome(),
		History:  s.game.History(),
	}
}

func (s *Session) ComputerColor() game.Color {
	return s.Human.Opponent()
}

// pieceOn resolves a square to the piece standing on it.
func (s *Session) pieceOn(sq game.Square) (game.PieceID, error) {
	p, ok := s.game.Board().PieceAt(sq)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrEmptySquare, sq)
	}
	return p.ID, nil
}

func (s *Session) humanTurn() error {
	if s.game.Turn() != s.Human {
		return fmt.Errorf("%w: %s is thinking", ErrNotHumanTurn, s.ComputerColor())
	}
	return nil
}

// Select picks the human's piece on sq and returns its legal destinations.
func (s *Session) Select(sq game.Square) ([]game.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.humanTurn(); err != nil {
		return nil, err
	}
	id, err := s.pieceOn(sq)
	if err != nil {
		return nil, err
	}
	return s.game.Select(id)
}

// Move plays the human's piece from one square to another.
func (s *Session) Move(from, to game.Square) (game.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.humanTurn(); err != nil {
		return game.Result{}, err
	}
	id, err := s.pieceOn(from)
	if err != nil {
		return game.Result{}, err
	}
	res, err := s.game.ApplyMove(id, to)
	if err != nil {
		return res, err
	}
	s.UpdatedAt = time.Now()
	return res, nil
}

// ContinueChain makes the next jump of the piece currently capturing.
func (s *Session) ContinueChain(to game.Square) (game.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.game.Selected()
	if !ok || s.game.Phase() != game.AwaitingChainDecision {
		return game.Result{}, game.ErrNotChaining
	}
	res, err := s.game.ContinueChain(id, to)
	if err != nil {
		return res, err
	}
	s.UpdatedAt = time.Now()
	return res, nil
}

func (s *Session) EndChain() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.EndChain(); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// Reply plays the computer's turn.
func (s *Session) Reply() (agent.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Turn() != s.ComputerColor() {
		return agent.Turn{}, ErrNotComputerTurn
	}
	turn, err := s.computer.Play(s.game)
	if err != nil {
		return turn, err
	}
	s.UpdatedAt = time.Now()

	if turn.Outcome != nil {
		log.Info().Msgf("session %s: computer cannot play, %s", s.ID, turn.Outcome)
	} else {
		log.Debug().Msgf("session %s: computer played %v (forced=%t, nodes=%d)",
			s.ID, turn.Moves, turn.Metric.Forced, turn.Metric.Nodes)
	}
	return turn, nil
}
