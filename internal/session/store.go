package session

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
)

// Session is one saved pricing workspace: the input snapshot plus the most
// recent evaluation computed from it.
type Session struct {
	Token      string             `json:"token"`
	Name       string             `json:"name"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Snapshot   engine.Snapshot    `json:"snapshot"`
	Evaluation *engine.Evaluation `json:"evaluation,omitempty"`
}

// Store is the persistence surface the HTTP layer talks to. Both the
// in-memory and the SQLite-backed implementations satisfy it.
type Store interface {
	Create(name string, snapshot engine.Snapshot, eval *engine.Evaluation) (*Session, error)
	Get(token string) (*Session, error)
	List() ([]*Session, error)
	Update(token, name string, snapshot engine.Snapshot, eval *engine.Evaluation) (*Session, error)
	Delete(token string) error
	Close() error
}

// MemoryStore keeps sessions in a mutex-guarded map. Sessions are copied on
// the way in and out so callers never share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: map[string]*Session{},
		now:      time.Now,
	}
}

func newToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("session: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func (s *MemoryStore) Create(name string, snapshot engine.Snapshot, eval *engine.Evaluation) (*Session, error) {
	if name == "" {
		return nil, NewValidationError("session name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		Token:      newToken(),
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
		Snapshot:   snapshot,
		Evaluation: eval,
	}
	s.sessions[sess.Token] = sess
	return copySession(sess), nil
}

func (s *MemoryStore) Get(token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, NewNotFoundError(token)
	}
	return copySession(sess), nil
}

// List returns all sessions, most recently updated first.
func (s *MemoryStore) List() ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, copySession(sess))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].Token < out[j].Token
	})
	return out, nil
}

func (s *MemoryStore) Update(token, name string, snapshot engine.Snapshot, eval *engine.Evaluation) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, NewNotFoundError(token)
	}
	if name != "" {
		sess.Name = name
	}
	sess.Snapshot = snapshot
	sess.Evaluation = eval
	sess.UpdatedAt = s.now()
	return copySession(sess), nil
}

func (s *MemoryStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return NewNotFoundError(token)
	}
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func copySession(sess *Session) *Session {
	cp := *sess
	if sess.Evaluation != nil {
		ev := *sess.Evaluation
		cp.Evaluation = &ev
	}
	return &cp
}
