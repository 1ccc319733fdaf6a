package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

var classifierRef = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

func TestClassify_PriorityBeatsDate(t *testing.T) {
	tests := []struct {
		name string
		task domain.Task
		want domain.Category
	}{
		{
			name: "urgent is high-priority regardless of date",
			task: domain.Task{DateTime: "2020-01-01T10:00", Priority: domain.PriorityUrgent, Status: domain.TaskStatusPending},
			want: domain.CategoryHighPriority,
		},
		{
			name: "urgent in the future is still high-priority",
			task: domain.Task{DateTime: "2030-01-01T10:00", Priority: domain.PriorityUrgent, Status: domain.TaskStatusPending},
			want: domain.CategoryHighPriority,
		},
		{
			name: "overdue medium is follow-up, not late",
			task: domain.Task{DateTime: "2024-01-01T10:00", Priority: domain.PriorityMedium, Status: domain.TaskStatusPending},
			want: domain.CategoryFollowUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.Classify(tt.task, classifierRef))
		})
	}
}

func TestClassify_DateBuckets(t *testing.T) {
	yesterday := classifierRef.AddDate(0, 0, -1).Format("2006-01-02") + "T10:00"

	for _, priority := range []domain.Priority{domain.PriorityLow, domain.PriorityHigh} {
		task := domain.Task{DateTime: yesterday, Priority: priority, Status: domain.TaskStatusPending}
		require.Equal(t, domain.CategoryLate, domain.Classify(task, classifierRef), "priority %s", priority)
	}

	completed := domain.Task{DateTime: yesterday, Priority: domain.PriorityLow, Status: domain.TaskStatusCompleted}
	require.Equal(t, domain.CategoryUpcoming, domain.Classify(completed, classifierRef),
		"completed tasks never go late")

	today := domain.Task{DateTime: "2024-06-01T23:30", Priority: domain.PriorityLow, Status: domain.TaskStatusPending}
	require.Equal(t, domain.CategoryDueToday, domain.Classify(today, classifierRef))

	future := domain.Task{DateTime: "2024-06-10T08:00", Priority: domain.PriorityHigh, Status: domain.TaskStatusPending}
	require.Equal(t, domain.CategoryUpcoming, domain.Classify(future, classifierRef))
}

func TestClassify_MissingOrInvalidDateFallsBack(t *testing.T) {
	for _, dateTime := range []string{"", "not-a-date", "2024-13-45T99:99"} {
		task := domain.Task{DateTime: dateTime, Priority: domain.PriorityLow}
		require.Equal(t, domain.CategoryDueToday, domain.Classify(task, classifierRef), "dateTime %q", dateTime)
	}

	// The fallback wins even over urgent: an unparsable date short
	// circuits before the priority checks.
	urgent := domain.Task{DateTime: "garbage", Priority: domain.PriorityUrgent}
	require.Equal(t, domain.CategoryDueToday, domain.Classify(urgent, classifierRef))
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Name: "Code Review Session", Description: "review pull requests", DateTime: "2024-05-20T16:00", Priority: domain.PriorityHigh, Status: domain.TaskStatusOverdue},
		{ID: 2, Name: "Database Migration", Description: "production migration", DateTime: "2024-05-25T09:00", Priority: domain.PriorityMedium, Status: domain.TaskStatusInProgress},
		{ID: 3, Name: "Project Proposal", Description: "quarterly proposal", DateTime: "2024-06-01T10:00", Priority: domain.PriorityLow, Status: domain.TaskStatusInProgress},
		{ID: 4, Name: "Client Check-in", Description: "potential client call", DateTime: "2024-06-10T11:00", Priority: domain.PriorityUrgent, Status: domain.TaskStatusPending},
		{ID: 5, Name: "Annual Review", Description: "performance review", DateTime: "2024-06-20T15:00", Priority: domain.PriorityLow, Status: domain.TaskStatusPending},
	}
}

func TestFilterTasks_EmptySearchAndAllReturnsInput(t *testing.T) {
	tasks := sampleTasks()

	got := domain.FilterTasks(tasks, "", domain.ByCategory(domain.FilterAll), classifierRef)
	require.Equal(t, tasks, got)

	got = domain.FilterTasks(tasks, "", domain.ByPriority("all"), classifierRef)
	require.Equal(t, tasks, got)
}

func TestFilterTasks_SearchIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	tasks := sampleTasks()

	byName := domain.FilterTasks(tasks, "DATABASE", domain.SelectAll, classifierRef)
	require.Len(t, byName, 1)
	require.Equal(t, uint64(2), byName[0].ID)

	byDescription := domain.FilterTasks(tasks, "review", domain.SelectAll, classifierRef)
	require.Len(t, byDescription, 2)
	require.Equal(t, uint64(1), byDescription[0].ID)
	require.Equal(t, uint64(5), byDescription[1].ID)
}

func TestFilterTasks_ByCategoryAndByPriority(t *testing.T) {
	tasks := sampleTasks()

	late := domain.FilterTasks(tasks, "", domain.ByCategory("late"), classifierRef)
	require.Len(t, late, 1)
	require.Equal(t, uint64(1), late[0].ID)

	followUp := domain.FilterTasks(tasks, "", domain.ByCategory("follow-up"), classifierRef)
	require.Len(t, followUp, 1)
	require.Equal(t, uint64(2), followUp[0].ID)

	rawMedium := domain.FilterTasks(tasks, "", domain.ByPriority("medium"), classifierRef)
	require.Equal(t, followUp, rawMedium, "category and raw-priority forms agree here")

	rawLow := domain.FilterTasks(tasks, "", domain.ByPriority("low"), classifierRef)
	require.Len(t, rawLow, 2)
}

func TestFilterTasks_IsIdempotentAndStable(t *testing.T) {
	tasks := sampleTasks()

	once := domain.FilterTasks(tasks, "e", domain.ByCategory(domain.FilterAll), classifierRef)
	twice := domain.FilterTasks(once, "e", domain.ByCategory(domain.FilterAll), classifierRef)
	require.Equal(t, once, twice)

	// Relative input order survives filtering.
	for i := 1; i < len(once); i++ {
		require.Less(t, once[i-1].ID, once[i].ID)
	}
}

func TestCountByCategory(t *testing.T) {
	counts := domain.CountByCategory(sampleTasks(), classifierRef)

	require.Equal(t, domain.CategoryCounts{
		Total:        5,
		DueToday:     1,
		FollowUp:     1,
		Late:         1,
		Upcoming:     1,
		HighPriority: 1,
	}, counts)
}

func TestRankByRelevance_BucketOrderThenDate(t *testing.T) {
	ranked := domain.RankByRelevance(sampleTasks(), nil, classifierRef)

	var ids []uint64
	for _, task := range ranked {
		ids = append(ids, task.ID)
	}
	// due-today, late, upcoming, follow-up, high-priority.
	require.Equal(t, []uint64{3, 1, 5, 2, 4}, ids)
}

func TestRankByRelevance_TieBreakByDateString(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, DateTime: "2024-06-20T15:00", Priority: domain.PriorityLow, Status: domain.TaskStatusPending},
		{ID: 2, DateTime: "2024-06-05T08:00", Priority: domain.PriorityLow, Status: domain.TaskStatusPending},
	}

	ranked := domain.RankByRelevance(tasks, domain.ByCategory("upcoming"), classifierRef)
	require.Len(t, ranked, 2)
	require.Equal(t, uint64(2), ranked[0].ID)
	require.Equal(t, uint64(1), ranked[1].ID)
}
