package domain

import (
	"sort"
	"strings"
	"time"
)

// Category is the derived display bucket a task lands in. It is computed
// from the raw priority and the task date, never stored.
type Category string

const (
	CategoryUpcoming     Category = "upcoming"
	CategoryDueToday     Category = "due-today"
	CategoryLate         Category = "late"
	CategoryFollowUp     Category = "follow-up"
	CategoryHighPriority Category = "high-priority"
)

// FilterAll is the sentinel selector value that matches every task.
const FilterAll = "all"

// Classify assigns a task to exactly one category. Priority-derived
// categories win over date-derived ones: an overdue medium task is
// still follow-up, not late. Tasks whose date is missing or does not
// parse land in due-today. Classify never fails.
func Classify(t Task, ref time.Time) Category {
	ts, ok := t.ParseDateTime()
	if !ok {
		return CategoryDueToday
	}

	switch t.Priority {
	case PriorityUrgent:
		return CategoryHighPriority
	case PriorityMedium:
		return CategoryFollowUp
	}

	refDay := ref.Format("2006-01-02")
	taskDay := ts.Format("2006-01-02")
	if taskDay < refDay && t.Status != TaskStatusCompleted {
		return CategoryLate
	}
	if taskDay == refDay {
		return CategoryDueToday
	}
	return CategoryUpcoming
}

// TaskSelector is a filter predicate over a single task. Screens filter
// either by derived category or by raw priority; both forms exist and
// are interchangeable from the filter's point of view.
type TaskSelector func(t Task, ref time.Time) bool

// SelectAll matches every task.
func SelectAll(Task, time.Time) bool { return true }

// ByCategory matches tasks whose derived category equals value.
// The "all" sentinel matches everything.
func ByCategory(value string) TaskSelector {
	if value == "" || value == FilterAll {
		return SelectAll
	}
	return func(t Task, ref time.Time) bool {
		return Classify(t, ref) == Category(value)
	}
}

// ByPriority matches on the raw priority field instead.
func ByPriority(value string) TaskSelector {
	if value == "" || value == FilterAll {
		return SelectAll
	}
	return func(t Task, _ time.Time) bool {
		return t.Priority == Priority(value)
	}
}

// FilterTasks narrows tasks by free-text search and a selector. The
// search term matches case-insensitively against name or description;
// an empty term always passes. Relative order of the input is kept.
func FilterTasks(tasks []Task, search string, sel TaskSelector, ref time.Time) []Task {
	if sel == nil {
		sel = SelectAll
	}
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Name), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			continue
		}
		if !sel(t, ref) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CategoryCounts tallies the dashboard overview cards.
type CategoryCounts struct {
	Total        int
	DueToday     int
	FollowUp     int
	Late         int
	Upcoming     int
	HighPriority int
}

// CountByCategory classifies every task once and tallies per bucket.
func CountByCategory(tasks []Task, ref time.Time) CategoryCounts {
	counts := CategoryCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch Classify(t, ref) {
		case CategoryDueToday:
			counts.DueToday++
		case CategoryFollowUp:
			counts.FollowUp++
		case CategoryLate:
			counts.Late++
		case CategoryUpcoming:
			counts.Upcoming++
		case CategoryHighPriority:
			counts.HighPriority++
		}
	}
	return counts
}

// categoryRank orders buckets for the booking task picker.
var categoryRank = map[Category]int{
	CategoryDueToday:     1,
	CategoryLate:         2,
	CategoryUpcoming:     3,
	CategoryFollowUp:     4,
	CategoryHighPriority: 5,
}

const categoryRankOther = 6

// RankByRelevance returns a new slice sorted for the booking task
// picker: due-today first, then late, upcoming, follow-up and
// high-priority, ties broken by ascending date string. The input is
// not mutated.
func RankByRelevance(tasks []Task, sel TaskSelector, ref time.Time) []Task {
	if sel == nil {
		sel = SelectAll
	}
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if sel(t, ref) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, ok := categoryRank[Classify(out[i], ref)]
		if !ok {
			ri = categoryRankOther
		}
		rj, ok := categoryRank[Classify(out[j], ref)]
		if !ok {
			rj = categoryRankOther
		}
		if ri != rj {
			return ri < rj
		}
		return out[i].DateTime < out[j].DateTime
	})
	return out
}
