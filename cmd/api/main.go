package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/handlers"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/memory"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/app/service"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/config"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/translator"

	httpadapter "github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http"
	httpmiddleware "github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	// Everything lives in memory: the task collection is the single
	// shared copy every view reads and writes, bookings are ephemeral
	// wizard sessions.
	taskStore := memory.NewSeededTaskStore(time.Now())
	bookingStore := memory.NewBookingStore()
	notificationStore := memory.NewNotificationStore(memory.SeedNotifications())
	reminderStore := memory.NewReminderStore(memory.SeedReminders())

	taskService := service.NewTaskService(taskStore, cfg.VideoLinkBase)
	bookingService := service.NewBookingService(bookingStore, taskStore, service.BookingConfig{
		LinkBase:    cfg.MeetLinkBase,
		ShareBase:   cfg.PublicBookingURL,
		SettleDelay: cfg.PaymentSettleDelay,
		StableLink:  cfg.MeetingLinkStable,
	})
	notificationService := service.NewNotificationService(notificationStore, taskStore)
	reminderService := service.NewReminderService(reminderStore, taskStore)
	analyticsService := service.NewAnalyticsService(taskStore)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(taskStore),
		handlers.NewTaskHandler(taskService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewReminderHandler(reminderService),
		handlers.NewAnalyticsHandler(analyticsService),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
