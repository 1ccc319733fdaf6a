package memory

import (
	"context"
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

// SeedTasks returns the demo task collection the app starts with. Two
// entries are pinned to the current day so the due-today bucket is
// never empty.
func SeedTasks(now time.Time) []domain.Task {
	today := now.Format("2006-01-02")

	return []domain.Task{
		{
			Name:        "Code Review Session",
			Description: "Review pull requests and provide feedback to development team",
			DateTime:    "2024-01-10T16:00",
			Priority:    domain.PriorityHigh,
			Status:      domain.TaskStatusOverdue,
			Repeat:      domain.RepeatNone,
			Type:        domain.TaskTypeRegular,
		},
		{
			Name:        "Database Migration",
			Description: "Execute critical database migration for production environment",
			DateTime:    "2024-01-12T09:00",
			Priority:    domain.PriorityMedium,
			Status:      domain.TaskStatusInProgress,
			Repeat:      domain.RepeatNone,
			Type:        domain.TaskTypeRegular,
		},
		{
			Name:        "Complete Project Proposal",
			Description: "Draft and finalize the quarterly project proposal for client presentation",
			DateTime:    today + "T10:00",
			Priority:    domain.PriorityLow,
			Status:      domain.TaskStatusInProgress,
			Repeat:      domain.RepeatNone,
			Type:        domain.TaskTypeRegular,
		},
		{
			Name:        "Weekly Team Standup",
			Description: "Prepare agenda and materials for the weekly team standup meeting",
			DateTime:    today + "T14:30",
			Priority:    domain.PriorityLow,
			Status:      domain.TaskStatusPending,
			Repeat:      domain.RepeatWeekly,
			RepeatDays:  []string{"monday", "wednesday", "friday"},
			Type:        domain.TaskTypeVideo,
			MeetingLink: domain.VideoMeetingLink("https://meet.dontforget.app"),
		},
		{
			Name:        "Client Follow-up Call",
			Description: "Follow up with ABC Corp about the Q1 marketing proposal and next steps",
			DateTime:    "2024-01-20T14:00",
			Priority:    domain.PriorityMedium,
			Status:      domain.TaskStatusPending,
			Repeat:      domain.RepeatNone,
			Type:        domain.TaskTypePhone,
		},
		{
			Name:        "Project Status Update",
			Description: "Send weekly project status update to stakeholders and team members",
			DateTime:    "2024-01-22T10:30",
			Priority:    domain.PriorityMedium,
			Status:      domain.TaskStatusPending,
			Repeat:      domain.RepeatWeekly,
			RepeatDays:  []string{"monday"},
			Type:        domain.TaskTypeRegular,
		},
		{
			Name:         "Monthly Client Check-in",
			Description:  "Schedule and conduct follow-up call with potential client",
			DateTime:     "2024-01-17T11:00",
			Priority:     domain.PriorityUrgent,
			Status:       domain.TaskStatusPending,
			Repeat:       domain.RepeatMonthly,
			RepeatMonths: []string{"january", "march", "may", "july", "september", "november"},
			FollowUps: []domain.FollowUpNote{
				{
					ID:   "2024-03-01T10:00:00Z",
					Text: "Zoom call completed. Need to send proposal.",
					Date: "2024-03-01T10:00:00Z",
				},
			},
			Type: domain.TaskTypeRegular,
		},
		{
			Name:        "Annual Review Meeting",
			Description: "Conduct yearly performance review with team members",
			DateTime:    now.AddDate(0, 0, 5).Format("2006-01-02") + "T15:00",
			Priority:    domain.PriorityLow,
			Status:      domain.TaskStatusPending,
			Repeat:      domain.RepeatYearly,
			Type:        domain.TaskTypeRegular,
		},
	}
}

// NewSeededTaskStore builds a task store pre-loaded with the demo data.
func NewSeededTaskStore(now time.Time) *TaskStore {
	store := NewTaskStore()
	ctx := context.Background()
	for _, t := range SeedTasks(now) {
		_, _ = store.Add(ctx, t)
	}
	return store
}

// SeedNotifications returns the starting custom notifications.
func SeedNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:        "custom-1",
			Type:      domain.NotificationSuccess,
			Title:     "Task Completed",
			Message:   "Weekly team standup has been completed successfully",
			Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Status:    domain.NotificationRead,
			Priority:  "low",
		},
		{
			ID:        "custom-2",
			Type:      domain.NotificationWarning,
			Title:     "System Maintenance",
			Message:   "Scheduled maintenance will occur tonight from 2 AM to 4 AM",
			Timestamp: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			Status:    domain.NotificationUnread,
			Priority:  "medium",
		},
		{
			ID:        "custom-3",
			Type:      domain.NotificationInfo,
			Title:     "New Feature Available",
			Message:   "Check out the new reminder system in the Reminders section",
			Timestamp: time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
			Status:    domain.NotificationRead,
			Priority:  "low",
		},
	}
}

// SeedReminders returns the starting custom reminders.
func SeedReminders() []domain.Reminder {
	return []domain.Reminder{
		{
			ID:          "reminder-1",
			Title:       "Weekly Team Check-in",
			Description: "Schedule weekly team check-in meeting",
			Date:        "2024-01-20",
			Time:        "10:00",
			Priority:    domain.PriorityHigh,
			Kind:        domain.ReminderKindCustom,
			Status:      domain.TaskStatusPending,
		},
		{
			ID:          "reminder-2",
			Title:       "Client Follow-up",
			Description: "Follow up with client about project proposal",
			Date:        "2024-01-18",
			Time:        "14:30",
			Priority:    domain.PriorityUrgent,
			Kind:        domain.ReminderKindCustom,
			Status:      domain.TaskStatusPending,
		},
	}
}
