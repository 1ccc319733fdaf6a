package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/dto"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/mapper"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/apierrors"
)

type ReminderHandler struct {
	reminderService ports.ReminderService
}

func NewReminderHandler(reminderService ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// ListReminders applies the screen selector via ?filter=: "all", a kind
// ("task"/"custom") or a raw priority value.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	lang := middleware.GetLang(c)

	items, err := h.reminderService.ListReminders(c.Request.Context(), c.Query("filter"))
	if err != nil {
		zap.L().Error("failed to list reminders", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListReminders, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToReminderItems(items))
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidReminder, lang),
		)
		return
	}

	in := domain.CreateReminderInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
	}
	if req.Priority != nil {
		in.Priority = domain.Priority(*req.Priority)
	}

	reminder, err := h.reminderService.AddReminder(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReminder) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidReminder, lang),
			)
			return
		}

		zap.L().Error("failed to create reminder", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListReminders, lang),
		)
		return
	}

	items := mapper.ToReminderItems([]domain.Reminder{reminder})
	c.JSON(http.StatusCreated, items[0])
}

func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.reminderService.CompleteReminder(c.Request.Context(), c.Param("id")); err != nil {
		h.renderReminderError(c, lang, err, "failed to complete reminder")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.reminderService.RemoveReminder(c.Request.Context(), c.Param("id")); err != nil {
		h.renderReminderError(c, lang, err, "failed to delete reminder")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) renderReminderError(c *gin.Context, lang string, err error, logMsg string) {
	if errors.Is(err, domain.ErrReminderNotFound) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgReminderNotFound, lang),
		)
		return
	}

	zap.L().Error(logMsg, zap.String("reminder_id", c.Param("id")), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListReminders, lang),
	)
}
