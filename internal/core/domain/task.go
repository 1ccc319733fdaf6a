package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// Priority is the raw priority set on a task at creation time. It is
// distinct from Category, which is derived from priority and date.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Repeat string

const (
	RepeatNone    Repeat = "None"
	RepeatDaily   Repeat = "Daily"
	RepeatWeekly  Repeat = "Weekly"
	RepeatMonthly Repeat = "Monthly"
	RepeatYearly  Repeat = "Yearly"
)

type TaskType string

const (
	TaskTypeRegular TaskType = "Regular"
	TaskTypeVideo   TaskType = "Video"
	TaskTypePhone   TaskType = "Phone"
	TaskTypeNote    TaskType = "Note"
)

// TaskDateTimeLayout is the combined date+time format tasks carry.
// Values stay strings because the collection may hold entries whose
// date never parses; classification falls back for those.
const TaskDateTimeLayout = "2006-01-02T15:04"

type FollowUpNote struct {
	ID   string
	Text string
	Date string
}

type Task struct {
	ID           uint64
	Name         string
	Description  string
	DateTime     string
	Priority     Priority
	Status       TaskStatus
	Repeat       Repeat
	RepeatDays   []string
	RepeatMonths []string
	FollowUps    []FollowUpNote
	Invitee      string
	Type         TaskType
	MeetingLink  string
	Tags         []string
	Reminder     string
}

// ParseDateTime returns the task's instant, reporting whether the
// stored value parses at all.
func (t Task) ParseDateTime() (time.Time, bool) {
	if t.DateTime == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{TaskDateTimeLayout, "2006-01-02T15:04:05", time.RFC3339} {
		if ts, err := time.ParseInLocation(layout, t.DateTime, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

type CreateTaskInput struct {
	Name         string
	Description  string
	DateTime     string
	Priority     Priority
	Status       TaskStatus
	Repeat       Repeat
	RepeatDays   []string
	RepeatMonths []string
	Invitee      string
	Type         TaskType
	Tags         []string
	Reminder     string
}

type UpdateTaskInput struct {
	Name        *string
	Description *string
	DateTime    *string
	Priority    *Priority
	Status      *TaskStatus
	Repeat      *Repeat
}
