// Package session owns the per-draft aggregates. Each session holds its own
// state and lock; sessions share nothing but read-only reference data, so
// there is no ambient global draft store anywhere in the service.
package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/draft"
	"github.com/google/uuid"
)

// Session is one logical draft. The mutex serialises apply/undo/reset, which
// read-then-write the cursor and slot arrays non-atomically; read paths take
// the same lock just long enough to snapshot.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu          sync.Mutex
	state       *draft.State
	invalidated bool
}

// Apply validates and applies a champion to the current step. A sequence
// desync invalidates the session permanently: continuing on desynced state
// produces nonsensical recommendations, so every later call fails loudly.
func (s *Session) Apply(championID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.invalidated {
		return domain.ErrSessionInvalidated
	}
	err := s.state.Apply(championID)
	if errors.Is(err, domain.ErrSequenceDesync) {
		s.invalidated = true
		log.Printf("FATAL [session %s] %v; session invalidated", s.ID, err)
	}
	return err
}

// Undo reverses the last action; a no-op when nothing has been applied.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalidated {
		return domain.ErrSessionInvalidated
	}
	s.state.Undo()
	return nil
}

// Reset clears the draft. It also clears an invalidated flag: reset is the
// documented recovery path after a desync.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
	s.invalidated = false
}

// Snapshot returns a consistent copy of the draft for read-only scoring and
// analysis.
func (s *Session) Snapshot() *draft.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Manager tracks live sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*Session)}
}

// Create starts a new draft session between the two named rosters.
func (m *Manager) Create(blueName, redName string, bluePlayers, redPlayers []domain.DraftPlayer) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		state:     draft.New(blueName, redName, bluePlayers, redPlayers),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}

func (m *Manager) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
