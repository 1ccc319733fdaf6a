package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/handlers"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	bookingHandler *handlers.BookingHandler,
	notificationHandler *handlers.NotificationHandler,
	reminderHandler *handlers.ReminderHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/counts", taskHandler.CountTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/booking/slots", bookingHandler.ListSlots)
		api.GET("/booking/share-link", bookingHandler.ShareLink)
		api.GET("/booking/tasks", bookingHandler.PickerTasks)
		api.POST("/bookings", bookingHandler.CreateBooking)
		api.GET("/bookings/:id", bookingHandler.GetBooking)
		api.PUT("/bookings/:id/slot", bookingHandler.SetSlot)
		api.PUT("/bookings/:id/guest", bookingHandler.SetGuest)
		api.POST("/bookings/:id/continue", bookingHandler.ContinueBooking)
		api.POST("/bookings/:id/reset", bookingHandler.ResetBooking)
		api.POST("/bookings/:id/connect-task", bookingHandler.ConnectTask)
		api.DELETE("/bookings/:id", bookingHandler.DeleteBooking)

		api.GET("/notifications", notificationHandler.ListNotifications)
		api.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		api.POST("/notifications/:id/read", notificationHandler.MarkRead)
		api.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

		api.GET("/reminders", reminderHandler.ListReminders)
		api.POST("/reminders", reminderHandler.CreateReminder)
		api.POST("/reminders/:id/complete", reminderHandler.CompleteReminder)
		api.DELETE("/reminders/:id", reminderHandler.DeleteReminder)

		api.GET("/analytics", analyticsHandler.GetReport)
	}
}
