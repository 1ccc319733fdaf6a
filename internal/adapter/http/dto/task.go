package dto

type FollowUpItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type TaskItem struct {
	ID           uint64         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	DateTime     string         `json:"date_time,omitempty"`
	Priority     string         `json:"priority"`
	Status       string         `json:"status"`
	Category     string         `json:"category"`
	Repeat       string         `json:"repeat"`
	RepeatDays   []string       `json:"repeat_days,omitempty"`
	RepeatMonths []string       `json:"repeat_months,omitempty"`
	FollowUps    []FollowUpItem `json:"follow_ups,omitempty"`
	Invitee      string         `json:"invitee,omitempty"`
	Type         string         `json:"type"`
	MeetingLink  string         `json:"meeting_link,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Reminder     string         `json:"reminder,omitempty"`
}

type CreateTaskRequest struct {
	Name         string   `json:"name" binding:"required,max=255"`
	Description  string   `json:"description" binding:"omitempty,max=65535"`
	DateTime     string   `json:"date_time" binding:"omitempty"`
	Priority     *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status       *string  `json:"status" binding:"omitempty,oneof=pending in-progress completed overdue"`
	Repeat       *string  `json:"repeat" binding:"omitempty,oneof=None Daily Weekly Monthly Yearly"`
	RepeatDays   []string `json:"repeat_days" binding:"omitempty,dive,max=16"`
	RepeatMonths []string `json:"repeat_months" binding:"omitempty,dive,max=16"`
	Invitee      string   `json:"invitee" binding:"omitempty,max=255"`
	Type         *string  `json:"type" binding:"omitempty,oneof=Regular Video Phone Note"`
	Tags         []string `json:"tags" binding:"omitempty,dive,max=64"`
	Reminder     string   `json:"reminder" binding:"omitempty,max=32"`
}

type UpdateTaskRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DateTime    *string `json:"date_time"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in-progress completed overdue"`
	Repeat      *string `json:"repeat" binding:"omitempty,oneof=None Daily Weekly Monthly Yearly"`
}

type TaskCounts struct {
	Total        int `json:"total"`
	DueToday     int `json:"due_today"`
	FollowUp     int `json:"follow_up"`
	Late         int `json:"late"`
	Upcoming     int `json:"upcoming"`
	HighPriority int `json:"high_priority"`
}
