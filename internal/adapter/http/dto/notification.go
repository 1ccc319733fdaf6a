package dto

type NotificationItem struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Status    string  `json:"status"`
	TaskID    *uint64 `json:"task_id,omitempty"`
	Priority  string  `json:"priority,omitempty"`
}

type ReminderItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Priority    string  `json:"priority"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	TaskID      *uint64 `json:"task_id,omitempty"`
}

type CreateReminderRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"omitempty,max=65535"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string  `json:"time" binding:"required,datetime=15:04"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type AnalyticsReport struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	InProgress     int            `json:"in_progress"`
	Pending        int            `json:"pending"`
	Overdue        int            `json:"overdue"`
	CompletionRate int            `json:"completion_rate"`
	PriorityStats  map[string]int `json:"priority_stats"`
	DueToday       int            `json:"due_today"`
	DueThisWeek    int            `json:"due_this_week"`
	OverdueTasks   int            `json:"overdue_tasks"`
}
