package apierrors

const (
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgFailListTask          = "errorListTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailCountTask         = "failCountTask"
	MsgBookingNotFound       = "bookingNotFound"
	MsgInvalidBookingPayload = "invalidBookingPayload"
	MsgInvalidSlot           = "invalidSlot"
	MsgFailBooking           = "failBooking"
	MsgNotificationNotFound  = "notificationNotFound"
	MsgFailListNotifications = "failListNotifications"
	MsgReminderNotFound      = "reminderNotFound"
	MsgInvalidReminder       = "invalidReminderPayload"
	MsgFailListReminders     = "failListReminders"
	MsgFailAnalytics         = "failAnalytics"
)
