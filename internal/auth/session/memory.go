package session

import (
	"context"
	"sync"
	"time"

	"pizzeria/internal/domain"
)

// MemoryStore is the process-held Store used in the default deployment.
// A janitor goroutine evicts expired records so abandoned sessions do not
// accumulate between logins.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]domain.Session),
		stop:     make(chan struct{}),
	}
	go s.janitor(cleanupInterval)
	return s
}

func (s *MemoryStore) Create(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if sess.Expired(time.Now()) {
		delete(s.sessions, token)
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for token, sess := range s.sessions {
				if sess.Expired(now) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
