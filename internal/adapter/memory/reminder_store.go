package memory

import (
	"context"
	"sync"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

// ReminderStore keeps the custom reminders in memory.
type ReminderStore struct {
	mu    sync.RWMutex
	items []domain.Reminder
}

var _ ports.ReminderStore = (*ReminderStore)(nil)

func NewReminderStore(seed []domain.Reminder) *ReminderStore {
	return &ReminderStore{items: append([]domain.Reminder(nil), seed...)}
}

func (s *ReminderStore) List(_ context.Context) ([]domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Reminder(nil), s.items...), nil
}

func (s *ReminderStore) Add(_ context.Context, reminder domain.Reminder) (domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, reminder)
	return reminder, nil
}

func (s *ReminderStore) Complete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = domain.TaskStatusCompleted
			return nil
		}
	}
	return domain.ErrReminderNotFound
}

func (s *ReminderStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrReminderNotFound
}
