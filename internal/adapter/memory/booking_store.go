package memory

import (
	"context"
	"sync"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

// BookingStore holds the live booking wizard sessions. Sessions are
// ephemeral: nothing survives a restart, matching the in-memory
// character of the flow.
type BookingStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.BookingSession
}

var _ ports.BookingStore = (*BookingStore)(nil)

func NewBookingStore() *BookingStore {
	return &BookingStore{sessions: make(map[string]*domain.BookingSession)}
}

func (s *BookingStore) Create(_ context.Context, session *domain.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *BookingStore) Get(_ context.Context, id string) (domain.BookingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.BookingSession{}, domain.ErrBookingNotFound
	}
	return *session, nil
}

// Mutate applies fn to the session under the write lock, so wizard
// transitions and the deferred settlement callback never interleave.
func (s *BookingStore) Mutate(_ context.Context, id string, fn func(*domain.BookingSession) error) (domain.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.BookingSession{}, domain.ErrBookingNotFound
	}
	if err := fn(session); err != nil {
		return domain.BookingSession{}, err
	}
	return *session, nil
}

func (s *BookingStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(s.sessions, id)
	return nil
}
