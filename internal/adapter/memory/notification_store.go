package memory

import (
	"context"
	"sync"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

// NotificationStore keeps the custom notifications in memory.
type NotificationStore struct {
	mu    sync.RWMutex
	items []domain.Notification
}

var _ ports.NotificationStore = (*NotificationStore)(nil)

func NewNotificationStore(seed []domain.Notification) *NotificationStore {
	return &NotificationStore{items: append([]domain.Notification(nil), seed...)}
}

func (s *NotificationStore) List(_ context.Context) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.items...), nil
}

func (s *NotificationStore) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = domain.NotificationRead
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (s *NotificationStore) MarkAllRead(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Status = domain.NotificationRead
	}
	return nil
}

func (s *NotificationStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}
