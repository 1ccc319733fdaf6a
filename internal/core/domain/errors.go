package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrInvalidSlot          = errors.New("invalid slot")
	ErrInvalidReminder      = errors.New("invalid reminder")
)
