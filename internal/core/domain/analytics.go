package domain

import (
	"math"
	"time"
)

// AnalyticsReport aggregates the analytics screen numbers.
type AnalyticsReport struct {
	Total          int
	Completed      int
	InProgress     int
	Pending        int
	Overdue        int
	CompletionRate int // percent, 0 when there are no tasks
	PriorityStats  map[Priority]int
	DueToday       int
	DueThisWeek    int
	OverdueTasks   int
}

// BuildAnalyticsReport computes every aggregate in a single pass over
// the collection without mutating it.
func BuildAnalyticsReport(tasks []Task, ref time.Time) AnalyticsReport {
	report := AnalyticsReport{
		Total: len(tasks),
		PriorityStats: map[Priority]int{
			PriorityLow:    0,
			PriorityMedium: 0,
			PriorityHigh:   0,
			PriorityUrgent: 0,
		},
	}

	refDay := ref.Format("2006-01-02")
	weekFromNow := ref.Add(7 * 24 * time.Hour)

	for _, t := range tasks {
		switch t.Status {
		case TaskStatusCompleted:
			report.Completed++
		case TaskStatusInProgress:
			report.InProgress++
		case TaskStatusPending:
			report.Pending++
		case TaskStatusOverdue:
			report.Overdue++
		}

		if _, ok := report.PriorityStats[t.Priority]; ok {
			report.PriorityStats[t.Priority]++
		}

		ts, ok := t.ParseDateTime()
		if !ok {
			continue
		}
		if ts.Format("2006-01-02") == refDay {
			report.DueToday++
		}
		if !ts.Before(ref) && !ts.After(weekFromNow) {
			report.DueThisWeek++
		}
		if ts.Before(ref) && t.Status != TaskStatusCompleted {
			report.OverdueTasks++
		}
	}

	if report.Total > 0 {
		report.CompletionRate = int(math.Round(float64(report.Completed) / float64(report.Total) * 100))
	}
	return report
}
