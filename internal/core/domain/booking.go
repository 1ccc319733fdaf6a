package domain

import (
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSlots are the half-hour labels offered for booking.
var DefaultSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00",
	"11:30", "12:00", "14:00", "14:30", "15:00",
	"15:30", "16:00",
}

func IsValidSlot(slot string) bool {
	for _, s := range DefaultSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Stage is the booking wizard position. Transitions are forward-only
// (select -> payment -> confirm) except for reset.
type Stage string

const (
	StageSelect  Stage = "select"
	StagePayment Stage = "payment"
	StageConfirm Stage = "confirm"
)

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

type Guest struct {
	Name    string
	Phone   string
	Email   string
	Comment string
}

// BookingSession is the ephemeral record behind one booking flow. It is
// never persisted; it exists only to drive the wizard and the
// confirmation view.
type BookingSession struct {
	ID              string
	Date            string
	Slot            string
	Guest           Guest
	PaymentMethod   PaymentMethod
	Stage           Stage
	RequirePayment  bool
	PayNow          bool
	RequireEmail    bool
	ConnectedTaskID *uint64
	MeetingLink     string

	linkToken string
}

func NewBookingSession(id, date string) *BookingSession {
	return &BookingSession{
		ID:            id,
		Date:          date,
		Stage:         StageSelect,
		PaymentMethod: PaymentMethodStripe,
	}
}

// GuestValid reports whether the required guest fields are filled.
// Email counts as required only where the flow collects it.
func (b *BookingSession) GuestValid() bool {
	if strings.TrimSpace(b.Guest.Name) == "" || strings.TrimSpace(b.Guest.Phone) == "" {
		return false
	}
	if b.RequireEmail && strings.TrimSpace(b.Guest.Email) == "" {
		return false
	}
	return true
}

// NeedsPayment is true when the owner enforces payment or the guest
// opted to pay now.
func (b *BookingSession) NeedsPayment() bool {
	return b.RequirePayment || b.PayNow
}

func (b *BookingSession) canLeaveSelect() bool {
	return b.GuestValid() && b.Slot != ""
}

// SetDate moves the session to another calendar day. Changing the day
// clears the selected slot and the derived meeting link.
func (b *BookingSession) SetDate(date string) {
	if date == "" || date == b.Date {
		return
	}
	b.Date = date
	b.Slot = ""
	b.MeetingLink = ""
}

// SelectSlot picks a slot and rederives the meeting link. With
// stableLink false a fresh token is minted on every selection, so each
// selection yields a new link; with stableLink true the session keeps
// its first token.
func (b *BookingSession) SelectSlot(slot, linkBase string, stableLink bool) error {
	if !IsValidSlot(slot) {
		return ErrInvalidSlot
	}
	b.Slot = slot
	if !stableLink || b.linkToken == "" {
		b.linkToken = NewLinkToken()
	}
	b.MeetingLink = MeetingLinkFor(linkBase, b.Date, b.Slot, b.linkToken)
	return nil
}

// Continue advances out of the select stage when the guest and slot
// gates pass, routing through payment only when payment is needed.
// Anything else is a no-op: invalid input surfaces as a disabled
// forward action, not an error.
func (b *BookingSession) Continue() (Stage, bool) {
	switch b.Stage {
	case StageSelect:
		if !b.canLeaveSelect() {
			return b.Stage, false
		}
		if b.NeedsPayment() {
			b.Stage = StagePayment
		} else {
			b.Stage = StageConfirm
		}
		return b.Stage, true
	case StagePayment, StageConfirm:
		return b.Stage, false
	}
	return b.Stage, false
}

// Settle completes the simulated payment. It applies only while the
// session still sits at the payment stage, so a deferred settlement
// firing after a reset is discarded.
func (b *BookingSession) Settle() bool {
	if b.Stage != StagePayment {
		return false
	}
	b.Stage = StageConfirm
	return true
}

// Reset returns a confirmed (or abandoned) session to the select stage
// with slot, guest and payment choices cleared.
func (b *BookingSession) Reset() {
	b.Slot = ""
	b.Guest = Guest{}
	b.PaymentMethod = PaymentMethodStripe
	b.PayNow = false
	b.Stage = StageSelect
	b.MeetingLink = ""
	b.linkToken = ""
}

const linkTokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewLinkToken returns a six character display token. The link is not
// an access-control secret, so math/rand is enough; anything treating
// it as one needs crypto/rand instead.
func NewLinkToken() string {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteByte(linkTokenAlphabet[rand.Intn(len(linkTokenAlphabet))])
	}
	return sb.String()
}

// VideoMeetingLink returns the placeholder auto-generated link a Video
// task gets, standing in for a Zoom / Google Meet integration.
func VideoMeetingLink(base string) string {
	token := strings.ToLower(NewLinkToken()[:4] + "-" + NewLinkToken()[:4] + "-" + NewLinkToken()[:4])
	return strings.TrimRight(base, "/") + "/" + token
}

// MeetingLinkFor builds the meeting link for a chosen date and slot.
func MeetingLinkFor(base, date, slot, token string) string {
	return fmt.Sprintf("%s/%s-%s-%s", strings.TrimRight(base, "/"), date, slot, token)
}

// CreateBookingInput carries the link parameters a booking session
// reads once when it starts: whether the guest arrived through a shared
// owner link, the owner's payment setting and an optional task context.
type CreateBookingInput struct {
	SharedLink bool
	Payment    string // "", "optional" or "required"
	TaskID     *uint64
}

// ShareLinkParams describe an owner-generated public booking link.
type ShareLinkParams struct {
	Owner   bool
	Payment string // "optional" or "required"
	TaskID  *uint64
}

// BuildShareLink renders the public booking URL the owner hands out.
// Writing it to the clipboard is the caller's concern.
func BuildShareLink(base string, p ShareLinkParams) string {
	values := url.Values{}
	if p.Owner {
		values.Set("owner", "true")
	}
	if p.Payment != "" {
		values.Set("payment", p.Payment)
	}
	if p.TaskID != nil {
		values.Set("task", strconv.FormatUint(*p.TaskID, 10))
	}
	if len(values) == 0 {
		return base
	}
	return base + "?" + values.Encode()
}
