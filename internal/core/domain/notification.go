package domain

import (
	"fmt"
	"sort"
	"time"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
)

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Status    NotificationStatus
	TaskID    *uint64
	Priority  string
}

// DeriveTaskNotifications builds alert entries from the task collection:
// one warning per overdue task, one info per task due today and one info
// per task due within the next 24 hours. Derived entries are always
// unread; only custom notifications carry read state.
func DeriveTaskNotifications(tasks []Task, ref time.Time) []Notification {
	var out []Notification
	refDay := ref.Format("2006-01-02")

	for _, t := range tasks {
		ts, ok := t.ParseDateTime()
		if !ok {
			continue
		}
		taskDay := ts.Format("2006-01-02")

		if ts.Before(ref) && t.Status != TaskStatusCompleted {
			id := t.ID
			out = append(out, Notification{
				ID:        fmt.Sprintf("overdue-%d", t.ID),
				Type:      NotificationWarning,
				Title:     "Task Overdue",
				Message:   fmt.Sprintf("%s was due %s", t.Name, ts.Format("1/2/2006")),
				Timestamp: ref,
				Status:    NotificationUnread,
				TaskID:    &id,
				Priority:  "high",
			})
		}

		if taskDay == refDay {
			id := t.ID
			out = append(out, Notification{
				ID:        fmt.Sprintf("due-today-%d", t.ID),
				Type:      NotificationInfo,
				Title:     "Task Due Today",
				Message:   fmt.Sprintf("%s is due today at %s", t.Name, ts.Format("03:04 PM")),
				Timestamp: ref,
				Status:    NotificationUnread,
				TaskID:    &id,
				Priority:  "medium",
			})
		}

		if ts.After(ref) && !ts.After(ref.Add(24*time.Hour)) {
			id := t.ID
			out = append(out, Notification{
				ID:        fmt.Sprintf("upcoming-%d", t.ID),
				Type:      NotificationInfo,
				Title:     "Task Due Tomorrow",
				Message:   fmt.Sprintf("%s is due tomorrow", t.Name),
				Timestamp: ref,
				Status:    NotificationUnread,
				TaskID:    &id,
				Priority:  "low",
			})
		}
	}
	return out
}

// FilterNotifications narrows by type and read status ("all" passes
// everything) and orders newest first. The input is not mutated.
func FilterNotifications(items []Notification, typeFilter, statusFilter string) []Notification {
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		if typeFilter != "" && typeFilter != FilterAll && string(n.Type) != typeFilter {
			continue
		}
		if statusFilter != "" && statusFilter != FilterAll && string(n.Status) != statusFilter {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
