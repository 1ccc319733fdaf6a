package dto

type GuestItem struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type BookingSessionItem struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Slot            string    `json:"slot,omitempty"`
	Guest           GuestItem `json:"guest"`
	PaymentMethod   string    `json:"payment_method"`
	Stage           string    `json:"stage"`
	RequirePayment  bool      `json:"require_payment"`
	PayNow          bool      `json:"pay_now"`
	RequireEmail    bool      `json:"require_email"`
	ConnectedTaskID *uint64   `json:"connected_task_id,omitempty"`
	MeetingLink     string    `json:"meeting_link,omitempty"`
}

type SetSlotRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Slot string `json:"slot" binding:"omitempty,max=8"`
}

type SetGuestRequest struct {
	Name          string  `json:"name" binding:"omitempty,max=255"`
	Phone         string  `json:"phone" binding:"omitempty,max=32"`
	Email         string  `json:"email" binding:"omitempty,max=255"`
	Comment       string  `json:"comment" binding:"omitempty,max=2048"`
	PayNow        *bool   `json:"pay_now"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,oneof=stripe paypal"`
}

type ConnectTaskRequest struct {
	TaskID uint64 `json:"task_id" binding:"required,gt=0"`
}

type SlotsResponse struct {
	Slots []string `json:"slots"`
}

type ShareLinkResponse struct {
	URL string `json:"url"`
}
