package ports

import (
	"context"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

// ReminderStore holds the custom reminders; task-derived ones are
// projected from the task collection by the service.
type ReminderStore interface {
	List(ctx context.Context) ([]domain.Reminder, error)
	Add(ctx context.Context, reminder domain.Reminder) (domain.Reminder, error)
	Complete(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

type ReminderService interface {
	ListReminders(ctx context.Context, selector string) ([]domain.Reminder, error)
	AddReminder(ctx context.Context, in domain.CreateReminderInput) (domain.Reminder, error)
	CompleteReminder(ctx context.Context, id string) error
	RemoveReminder(ctx context.Context, id string) error
}

type AnalyticsService interface {
	Report(ctx context.Context) (domain.AnalyticsReport, error)
}
