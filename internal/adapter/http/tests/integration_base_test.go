//go:build integration
// +build integration

package tests

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	httpadapter "github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/handlers"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/memory"
	appservice "github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/app/service"
)

// IntegrationSuiteBase wires the full application against fresh
// in-memory stores. Each test starts from the seeded demo data.
type IntegrationSuiteBase struct {
	suite.Suite

	router    *gin.Engine
	taskStore *memory.TaskStore
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.taskStore = memory.NewSeededTaskStore(time.Now())
	bookingStore := memory.NewBookingStore()
	notificationStore := memory.NewNotificationStore(memory.SeedNotifications())
	reminderStore := memory.NewReminderStore(memory.SeedReminders())

	taskService := appservice.NewTaskService(s.taskStore, "https://meet.dontforget.app")
	bookingService := appservice.NewBookingService(bookingStore, s.taskStore, appservice.BookingConfig{
		LinkBase:    "https://dontforget.app/meet",
		ShareBase:   "https://dontforget.app/book",
		SettleDelay: 20 * time.Millisecond,
	})
	notificationService := appservice.NewNotificationService(notificationStore, s.taskStore)
	reminderService := appservice.NewReminderService(reminderStore, s.taskStore)
	analyticsService := appservice.NewAnalyticsService(s.taskStore)

	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(s.taskStore),
		handlers.NewTaskHandler(taskService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewReminderHandler(reminderService),
		handlers.NewAnalyticsHandler(analyticsService),
	)

	s.router = router
}
