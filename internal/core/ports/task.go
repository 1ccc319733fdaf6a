package ports

import (
	"context"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

type TaskStore interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	Add(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Remove(ctx context.Context, id uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasks(ctx context.Context, search string, sel domain.TaskSelector) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, in domain.UpdateTaskInput) (domain.Task, error)
	RemoveTask(ctx context.Context, id uint64) error
	CountTasks(ctx context.Context) (domain.CategoryCounts, error)
}
