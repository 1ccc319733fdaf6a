package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/mapper"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/apierrors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	lang := middleware.GetLang(c)

	items, err := h.notificationService.ListNotifications(
		c.Request.Context(),
		c.Query("type"),
		c.Query("status"),
	)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotifications, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(items))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.renderNotificationError(c, lang, err, "failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.notificationService.MarkAllRead(c.Request.Context()); err != nil {
		zap.L().Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotifications, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.notificationService.RemoveNotification(c.Request.Context(), c.Param("id")); err != nil {
		h.renderNotificationError(c, lang, err, "failed to delete notification")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) renderNotificationError(c *gin.Context, lang string, err error, logMsg string) {
	if errors.Is(err, domain.ErrNotificationNotFound) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang),
		)
		return
	}

	zap.L().Error(logMsg, zap.String("notification_id", c.Param("id")), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotifications, lang),
	)
}
