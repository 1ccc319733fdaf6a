package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

const defaultSettleDelay = 400 * time.Millisecond

// BookingConfig tunes the booking wizard behavior.
type BookingConfig struct {
	// LinkBase is the meeting link base, e.g. https://dontforget.app/meet.
	LinkBase string
	// ShareBase is the public booking page URL share links point at.
	ShareBase string
	// SettleDelay is how long the simulated payment settlement takes.
	SettleDelay time.Duration
	// StableLink keeps one meeting link token per session instead of
	// minting a fresh one on every slot selection.
	StableLink bool
}

type BookingService struct {
	bookingStore ports.BookingStore
	taskStore    ports.TaskStore
	cfg          BookingConfig
	now          func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewBookingService(bookingStore ports.BookingStore, taskStore ports.TaskStore, cfg BookingConfig) *BookingService {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = defaultSettleDelay
	}
	return &BookingService{
		bookingStore: bookingStore,
		taskStore:    taskStore,
		cfg:          cfg,
		now:          time.Now,
		timers:       make(map[string]*time.Timer),
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.BookingSession, error) {
	session := domain.NewBookingSession(uuid.NewString(), s.now().Format("2006-01-02"))
	// Public shared links collect the guest's email as well.
	session.RequireEmail = in.SharedLink
	session.RequirePayment = in.Payment == "required"

	if in.TaskID != nil {
		if _, err := s.taskStore.Get(ctx, *in.TaskID); err != nil {
			// Link parameters are untrusted; an unknown task is dropped,
			// not fatal.
			zap.L().Debug("ignoring unknown task in booking link", zap.Uint64("task_id", *in.TaskID), zap.Error(err))
		} else {
			id := *in.TaskID
			session.ConnectedTaskID = &id
		}
	}

	if err := s.bookingStore.Create(ctx, session); err != nil {
		return domain.BookingSession{}, err
	}
	return *session, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (domain.BookingSession, error) {
	return s.bookingStore.Get(ctx, id)
}

func (s *BookingService) SetSlot(ctx context.Context, id, date, slot string) (domain.BookingSession, error) {
	return s.bookingStore.Mutate(ctx, id, func(b *domain.BookingSession) error {
		b.SetDate(date)
		if slot == "" {
			return nil
		}
		return b.SelectSlot(slot, s.cfg.LinkBase, s.cfg.StableLink)
	})
}

func (s *BookingService) SetGuest(ctx context.Context, id string, guest domain.Guest, payNow *bool, method *domain.PaymentMethod) (domain.BookingSession, error) {
	return s.bookingStore.Mutate(ctx, id, func(b *domain.BookingSession) error {
		b.Guest = guest
		if payNow != nil {
			b.PayNow = *payNow
		}
		if method != nil {
			b.PaymentMethod = *method
		}
		return nil
	})
}

// ContinueBooking drives the forward action. At the select stage it
// advances to payment or straight to confirm once the validation gates
// pass (and is a silent no-op otherwise). At the payment stage it kicks
// off the simulated settlement, which confirms after a fixed delay.
func (s *BookingService) ContinueBooking(ctx context.Context, id string) (domain.BookingSession, error) {
	settle := false
	session, err := s.bookingStore.Mutate(ctx, id, func(b *domain.BookingSession) error {
		if b.Stage == domain.StagePayment {
			settle = true
			return nil
		}
		b.Continue()
		return nil
	})
	if err != nil {
		return domain.BookingSession{}, err
	}
	if settle {
		s.scheduleSettlement(id)
	}
	return session, nil
}

func (s *BookingService) ResetBooking(ctx context.Context, id string) (domain.BookingSession, error) {
	s.cancelSettlement(id)
	return s.bookingStore.Mutate(ctx, id, func(b *domain.BookingSession) error {
		b.Reset()
		return nil
	})
}

func (s *BookingService) ConnectTask(ctx context.Context, id string, taskID uint64) (domain.BookingSession, error) {
	if _, err := s.taskStore.Get(ctx, taskID); err != nil {
		return domain.BookingSession{}, err
	}
	return s.bookingStore.Mutate(ctx, id, func(b *domain.BookingSession) error {
		b.ConnectedTaskID = &taskID
		return nil
	})
}

func (s *BookingService) RemoveBooking(ctx context.Context, id string) error {
	s.cancelSettlement(id)
	return s.bookingStore.Remove(ctx, id)
}

// PickerTasks lists tasks for the connect-a-task picker, most relevant
// first. The selector is a category value or "all".
func (s *BookingService) PickerTasks(ctx context.Context, selector string) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RankByRelevance(tasks, domain.ByCategory(selector), s.now()), nil
}

func (s *BookingService) Slots() []string {
	return append([]string(nil), domain.DefaultSlots...)
}

func (s *BookingService) ShareLink(p domain.ShareLinkParams) string {
	return domain.BuildShareLink(s.cfg.ShareBase, p)
}

// scheduleSettlement arms the one-shot settlement callback. A session
// reset or removed before it fires discards the effect instead of
// confirming a stale flow.
func (s *BookingService) scheduleSettlement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, armed := s.timers[id]; armed {
		return
	}
	s.timers[id] = time.AfterFunc(s.cfg.SettleDelay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()

		if _, err := s.bookingStore.Mutate(context.Background(), id, func(b *domain.BookingSession) error {
			b.Settle()
			return nil
		}); err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
			zap.L().Warn("payment settlement failed", zap.String("booking_id", id), zap.Error(err))
		}
	})
}

func (s *BookingService) cancelSettlement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, armed := s.timers[id]; armed {
		timer.Stop()
		delete(s.timers, id)
	}
}

var _ ports.BookingService = (*BookingService)(nil)
