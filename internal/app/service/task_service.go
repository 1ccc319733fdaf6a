package service

import (
	"context"
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

type TaskService struct {
	taskStore     ports.TaskStore
	videoLinkBase string
	now           func() time.Time
}

func NewTaskService(taskStore ports.TaskStore, videoLinkBase string) *TaskService {
	return &TaskService{taskStore: taskStore, videoLinkBase: videoLinkBase, now: time.Now}
}

func (s *TaskService) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		Name:         in.Name,
		Description:  in.Description,
		DateTime:     in.DateTime,
		Priority:     in.Priority,
		Status:       in.Status,
		Repeat:       in.Repeat,
		RepeatDays:   in.RepeatDays,
		RepeatMonths: in.RepeatMonths,
		Invitee:      in.Invitee,
		Type:         in.Type,
		Tags:         in.Tags,
		Reminder:     in.Reminder,
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Repeat == "" {
		task.Repeat = domain.RepeatNone
	}
	if task.Type == "" {
		task.Type = domain.TaskTypeRegular
	}
	// Video tasks get an auto-generated meeting link.
	if task.Type == domain.TaskTypeVideo {
		task.MeetingLink = domain.VideoMeetingLink(s.videoLinkBase)
	}
	return s.taskStore.Add(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskStore.Get(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, search string, sel domain.TaskSelector) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterTasks(tasks, search, sel, s.now()), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, in domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskStore.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DateTime != nil {
		task.DateTime = *in.DateTime
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Repeat != nil {
		task.Repeat = *in.Repeat
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) RemoveTask(ctx context.Context, id uint64) error {
	return s.taskStore.Remove(ctx, id)
}

func (s *TaskService) CountTasks(ctx context.Context) (domain.CategoryCounts, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return domain.CategoryCounts{}, err
	}
	return domain.CountByCategory(tasks, s.now()), nil
}

var _ ports.TaskService = (*TaskService)(nil)
