package gamemaster

import (
	"errors"
	"sync"
	"time"

	"checkers/agent"
	"checkers/game"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the human-vs-computer sessions of one process.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	goroutines int
}

func NewManager(goroutines int) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		goroutines: goroutines,
	}
}

// NewSession starts a game where the computer plays the opponent of human
// with a search of the given depth. Game options override the standard
// starting position.
func (m *Manager) NewSession(depth int, human game.Color, options ...game.Option) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	search := searcher.NewMinimax(
		searcher.WithDepth(depth),
		searcher.WithGoroutines(m.goroutines),
		searcher.WithMetrics(),
	)
	s := &Session{
		ID:        uuid.NewString(),
		Human:     human,
		Depth:     depth,
		game:      game.NewGame(options...),
		computer:  agent.NewMinimaxAgent(search),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.sessions[s.ID] = s

	log.Info().Msgf("session %s created: human plays %s, computer depth %d", s.ID, human, depth)
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
