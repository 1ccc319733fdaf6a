package ports

import (
	"context"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

type BookingStore interface {
	Create(ctx context.Context, session *domain.BookingSession) error
	Get(ctx context.Context, id string) (domain.BookingSession, error)
	// Mutate applies fn to the stored session under the store's lock and
	// returns the resulting state.
	Mutate(ctx context.Context, id string, fn func(*domain.BookingSession) error) (domain.BookingSession, error)
	Remove(ctx context.Context, id string) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.BookingSession, error)
	GetBooking(ctx context.Context, id string) (domain.BookingSession, error)
	SetSlot(ctx context.Context, id, date, slot string) (domain.BookingSession, error)
	SetGuest(ctx context.Context, id string, guest domain.Guest, payNow *bool, method *domain.PaymentMethod) (domain.BookingSession, error)
	ContinueBooking(ctx context.Context, id string) (domain.BookingSession, error)
	ResetBooking(ctx context.Context, id string) (domain.BookingSession, error)
	ConnectTask(ctx context.Context, id string, taskID uint64) (domain.BookingSession, error)
	RemoveBooking(ctx context.Context, id string) error
	PickerTasks(ctx context.Context, selector string) ([]domain.Task, error)
	Slots() []string
	ShareLink(p domain.ShareLinkParams) string
}
