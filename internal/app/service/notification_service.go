package service

import (
	"context"
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

type NotificationService struct {
	notificationStore ports.NotificationStore
	taskStore         ports.TaskStore
	now               func() time.Time
}

func NewNotificationService(notificationStore ports.NotificationStore, taskStore ports.TaskStore) *NotificationService {
	return &NotificationService{
		notificationStore: notificationStore,
		taskStore:         taskStore,
		now:               time.Now,
	}
}

// ListNotifications merges task-derived alerts with the stored custom
// notifications, filtered and ordered newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, typeFilter, statusFilter string) ([]domain.Notification, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.notificationStore.List(ctx)
	if err != nil {
		return nil, err
	}

	all := domain.DeriveTaskNotifications(tasks, s.now())
	all = append(all, custom...)
	return domain.FilterNotifications(all, typeFilter, statusFilter), nil
}

// MarkRead flips a custom notification to read. Task-derived entries
// are recomputed every read and carry no persistent state.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.notificationStore.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationStore.MarkAllRead(ctx)
}

func (s *NotificationService) RemoveNotification(ctx context.Context, id string) error {
	return s.notificationStore.Remove(ctx, id)
}

var _ ports.NotificationService = (*NotificationService)(nil)
