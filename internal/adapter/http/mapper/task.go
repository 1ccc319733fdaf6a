package mapper

import (
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/dto"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, ref time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, ref))
	}
	return items
}

func ToTaskItem(task domain.Task, ref time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID,
		Name:         task.Name,
		Description:  task.Description,
		DateTime:     task.DateTime,
		Priority:     string(task.Priority),
		Status:       string(task.Status),
		Category:     string(domain.Classify(task, ref)),
		Repeat:       string(task.Repeat),
		RepeatDays:   task.RepeatDays,
		RepeatMonths: task.RepeatMonths,
		Invitee:      task.Invitee,
		Type:         string(task.Type),
		MeetingLink:  task.MeetingLink,
		Tags:         task.Tags,
		Reminder:     task.Reminder,
	}

	for _, note := range task.FollowUps {
		item.FollowUps = append(item.FollowUps, dto.FollowUpItem{
			ID:   note.ID,
			Text: note.Text,
			Date: note.Date,
		})
	}

	return item
}

func ToTaskCounts(counts domain.CategoryCounts) dto.TaskCounts {
	return dto.TaskCounts{
		Total:        counts.Total,
		DueToday:     counts.DueToday,
		FollowUp:     counts.FollowUp,
		Late:         counts.Late,
		Upcoming:     counts.Upcoming,
		HighPriority: counts.HighPriority,
	}
}
