package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

type ReminderService struct {
	reminderStore ports.ReminderStore
	taskStore     ports.TaskStore
	now           func() time.Time
}

func NewReminderService(reminderStore ports.ReminderStore, taskStore ports.TaskStore) *ReminderService {
	return &ReminderService{reminderStore: reminderStore, taskStore: taskStore, now: time.Now}
}

// ListReminders merges reminders projected from tasks with the custom
// ones, then applies the screen selector.
func (s *ReminderService) ListReminders(ctx context.Context, selector string) ([]domain.Reminder, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.reminderStore.List(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]domain.Reminder, 0, len(tasks)+len(custom))
	for _, t := range tasks {
		all = append(all, domain.ReminderFromTask(t))
	}
	all = append(all, custom...)
	return domain.FilterReminders(all, selector), nil
}

func (s *ReminderService) AddReminder(ctx context.Context, in domain.CreateReminderInput) (domain.Reminder, error) {
	if !in.Valid() {
		return domain.Reminder{}, domain.ErrInvalidReminder
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	return s.reminderStore.Add(ctx, domain.Reminder{
		ID:          fmt.Sprintf("reminder-%d", s.now().UnixMilli()),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Priority:    priority,
		Kind:        domain.ReminderKindCustom,
		Status:      domain.TaskStatusPending,
	})
}

func (s *ReminderService) CompleteReminder(ctx context.Context, id string) error {
	return s.reminderStore.Complete(ctx, id)
}

func (s *ReminderService) RemoveReminder(ctx context.Context, id string) error {
	return s.reminderStore.Remove(ctx, id)
}

var _ ports.ReminderService = (*ReminderService)(nil)
