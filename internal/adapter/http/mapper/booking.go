package mapper

import (
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/dto"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

func ToBookingSessionItem(session domain.BookingSession) dto.BookingSessionItem {
	return dto.BookingSessionItem{
		ID:   session.ID,
		Date: session.Date,
		Slot: session.Slot,
		Guest: dto.GuestItem{
			Name:    session.Guest.Name,
			Phone:   session.Guest.Phone,
			Email:   session.Guest.Email,
			Comment: session.Guest.Comment,
		},
		PaymentMethod:   string(session.PaymentMethod),
		Stage:           string(session.Stage),
		RequirePayment:  session.RequirePayment,
		PayNow:          session.PayNow,
		RequireEmail:    session.RequireEmail,
		ConnectedTaskID: session.ConnectedTaskID,
		MeetingLink:     session.MeetingLink,
	}
}

func ToNotificationItems(items []domain.Notification) []dto.NotificationItem {
	out := make([]dto.NotificationItem, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationItem{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp.Format(time.RFC3339),
			Status:    string(n.Status),
			TaskID:    n.TaskID,
			Priority:  n.Priority,
		})
	}
	return out
}

func ToReminderItems(items []domain.Reminder) []dto.ReminderItem {
	out := make([]dto.ReminderItem, 0, len(items))
	for _, r := range items {
		out = append(out, dto.ReminderItem{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Date:        r.Date,
			Time:        r.Time,
			Priority:    string(r.Priority),
			Type:        string(r.Kind),
			Status:      string(r.Status),
			TaskID:      r.TaskID,
		})
	}
	return out
}

func ToAnalyticsReport(report domain.AnalyticsReport) dto.AnalyticsReport {
	stats := make(map[string]int, len(report.PriorityStats))
	for priority, count := range report.PriorityStats {
		stats[string(priority)] = count
	}
	return dto.AnalyticsReport{
		Total:          report.Total,
		Completed:      report.Completed,
		InProgress:     report.InProgress,
		Pending:        report.Pending,
		Overdue:        report.Overdue,
		CompletionRate: report.CompletionRate,
		PriorityStats:  stats,
		DueToday:       report.DueToday,
		DueThisWeek:    report.DueThisWeek,
		OverdueTasks:   report.OverdueTasks,
	}
}
