package ports

import (
	"context"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

// NotificationStore holds the custom notifications; task-derived ones
// are computed on the fly by the service.
type NotificationStore interface {
	List(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Remove(ctx context.Context, id string) error
}

type NotificationService interface {
	ListNotifications(ctx context.Context, typeFilter, statusFilter string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	RemoveNotification(ctx context.Context, id string) error
}
