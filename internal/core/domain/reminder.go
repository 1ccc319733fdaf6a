package domain

import (
	"fmt"
	"strings"
)

type ReminderKind string

const (
	ReminderKindTask   ReminderKind = "task"
	ReminderKindCustom ReminderKind = "custom"
)

type Reminder struct {
	ID          string
	Title       string
	Description string
	Date        string // 2006-01-02
	Time        string // 15:04
	Priority    Priority
	Kind        ReminderKind
	Status      TaskStatus
	TaskID      *uint64
}

// ReminderFromTask projects a task into the reminders view, splitting
// the combined date+time value into its two parts.
func ReminderFromTask(t Task) Reminder {
	r := Reminder{
		ID:          fmt.Sprintf("task-%d", t.ID),
		Title:       t.Name,
		Description: t.Description,
		Priority:    t.Priority,
		Kind:        ReminderKindTask,
		Status:      t.Status,
	}
	id := t.ID
	r.TaskID = &id

	if date, rest, found := strings.Cut(t.DateTime, "T"); found {
		r.Date = date
		if len(rest) >= 5 {
			r.Time = rest[:5]
		}
	} else {
		r.Date = t.DateTime
	}
	return r
}

// FilterReminders applies the reminders screen selector: "all", a kind
// ("task"/"custom") or a raw priority value. Order is preserved.
func FilterReminders(items []Reminder, selector string) []Reminder {
	if selector == "" || selector == FilterAll {
		return append([]Reminder(nil), items...)
	}
	out := make([]Reminder, 0, len(items))
	for _, r := range items {
		switch selector {
		case string(ReminderKindTask), string(ReminderKindCustom):
			if string(r.Kind) == selector {
				out = append(out, r)
			}
		default:
			if string(r.Priority) == selector {
				out = append(out, r)
			}
		}
	}
	return out
}

type CreateReminderInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Priority    Priority
}

// Valid reports whether the add-reminder form gates pass: title, date
// and time are all required.
func (in CreateReminderInput) Valid() bool {
	return strings.TrimSpace(in.Title) != "" && in.Date != "" && in.Time != ""
}
