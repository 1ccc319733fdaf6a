package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/dto"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/mapper"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/apierrors"
)

type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking opens a wizard session. Shared-link parameters ride in
// as query params and are read exactly once, here: ?owner=true marks a
// public shared link, ?payment=optional|required is the owner's payment
// setting and ?task= an optional task context.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	lang := middleware.GetLang(c)

	in := domain.CreateBookingInput{
		SharedLink: c.Query("owner") == "true",
		Payment:    c.Query("payment"),
	}
	if raw := c.Query("task"); raw != "" {
		if taskID, err := strconv.ParseUint(raw, 10, 64); err == nil && taskID > 0 {
			in.TaskID = &taskID
		}
	}

	session, err := h.bookingService.CreateBooking(c.Request.Context(), in)
	if err != nil {
		zap.L().Error("failed to create booking session", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBooking, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBookingSessionItem(session))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	lang := middleware.GetLang(c)

	session, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderBookingError(c, lang, err, "failed to get booking session")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBookingSessionItem(session))
}

func (h *BookingHandler) SetSlot(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SetSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBookingPayload, lang),
		)
		return
	}

	session, err := h.bookingService.SetSlot(c.Request.Context(), c.Param("id"), req.Date, req.Slot)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSlot) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSlot, lang),
			)
			return
		}
		h.renderBookingError(c, lang, err, "failed to set booking slot")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBookingSessionItem(session))
}

func (h *BookingHandler) SetGuest(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SetGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBookingPayload, lang),
		)
		return
	}

	guest := domain.Guest{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Comment: req.Comment,
	}
	var method *domain.PaymentMethod
	if req.PaymentMethod != nil {
		value := domain.PaymentMethod(*req.PaymentMethod)
		method = &value
	}

	session, err := h.bookingService.SetGuest(c.Request.Context(), c.Param("id"), guest, req.PayNow, method)
	if err != nil {
		h.renderBookingError(c, lang, err, "failed to set booking guest")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBookingSessionItem(session))
}

// ContinueBooking is the wizard's forward action. An invalid select
// stage is not an error: the session simply stays where it is, the way
// a disabled submit button keeps a form in place.
func (h *BookingHandler) ContinueBooking(c *gin.Context) {
	lang := middleware.GetLang(c)

	session, err := h.bookingService.ContinueBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderBookingError(c, lang, err, "failed to continue booking")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBookingSessionItem(session))
}

func (h *BookingHandler) ResetBooking(c *gin.Context) {
	lang := middleware.GetLang(c)

	session, err := h.bookingService.ResetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderBookingError(c, lang, err, "failed to reset booking")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBookingSessionItem(session))
}

func (h *BookingHandler) ConnectTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ConnectTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBookingPayload, lang),
		)
		return
	}

	session, err := h.bookingService.ConnectTask(c.Request.Context(), c.Param("id"), req.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		h.renderBookingError(c, lang, err, "failed to connect task to booking")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBookingSessionItem(session))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.bookingService.RemoveBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.renderBookingError(c, lang, err, "failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SlotsResponse{Slots: h.bookingService.Slots()})
}

// PickerTasks lists candidate tasks for the connect-a-task picker,
// most relevant first. ?selector= is a category value or "all".
func (h *BookingHandler) PickerTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.bookingService.PickerTasks(c.Request.Context(), c.Query("selector"))
	if err != nil {
		zap.L().Error("failed to list picker tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, time.Now()))
}

// ShareLink renders the public booking URL for the owner to hand out.
// Copying it to the clipboard stays with the caller.
func (h *BookingHandler) ShareLink(c *gin.Context) {
	params := domain.ShareLinkParams{
		Owner:   c.Query("owner") == "true",
		Payment: c.Query("payment"),
	}
	if raw := c.Query("task"); raw != "" {
		if taskID, err := strconv.ParseUint(raw, 10, 64); err == nil && taskID > 0 {
			params.TaskID = &taskID
		}
	}

	c.JSON(http.StatusOK, dto.ShareLinkResponse{URL: h.bookingService.ShareLink(params)})
}

func (h *BookingHandler) renderBookingError(c *gin.Context, lang string, err error, logMsg string) {
	if errors.Is(err, domain.ErrBookingNotFound) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgBookingNotFound, lang),
		)
		return
	}

	zap.L().Error(logMsg, zap.String("booking_id", c.Param("id")), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBooking, lang),
	)
}
