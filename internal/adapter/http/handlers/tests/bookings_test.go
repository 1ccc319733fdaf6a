package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/dto"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/handlers"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/apierrors"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceMock struct {
	mock.Mock
}

func (m *bookingServiceMock) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.BookingSession, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) GetBooking(ctx context.Context, id string) (domain.BookingSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) SetSlot(ctx context.Context, id, date, slot string) (domain.BookingSession, error) {
	args := m.Called(ctx, id, date, slot)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) SetGuest(ctx context.Context, id string, guest domain.Guest, payNow *bool, method *domain.PaymentMethod) (domain.BookingSession, error) {
	args := m.Called(ctx, id, guest, payNow, method)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) ContinueBooking(ctx context.Context, id string) (domain.BookingSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) ResetBooking(ctx context.Context, id string) (domain.BookingSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) ConnectTask(ctx context.Context, id string, taskID uint64) (domain.BookingSession, error) {
	args := m.Called(ctx, id, taskID)
	return args.Get(0).(domain.BookingSession), args.Error(1)
}

func (m *bookingServiceMock) RemoveBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *bookingServiceMock) PickerTasks(ctx context.Context, selector string) ([]domain.Task, error) {
	args := m.Called(ctx, selector)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *bookingServiceMock) Slots() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *bookingServiceMock) ShareLink(p domain.ShareLinkParams) string {
	args := m.Called(p)
	return args.String(0)
}

func TestBookingHandler_CreateBooking_ReadsQueryParams(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("CreateBooking", mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.SharedLink && in.Payment == "required" && in.TaskID != nil && *in.TaskID == 4
	})).Return(
		domain.BookingSession{
			ID:             "b-1",
			Date:           "2024-06-01",
			Stage:          domain.StageSelect,
			PaymentMethod:  domain.PaymentMethodStripe,
			RequireEmail:   true,
			RequirePayment: true,
		},
		nil,
	).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.POST("/api/bookings", middleware.LanguageMiddleware(), handler.CreateBooking)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings?owner=true&payment=required&task=4", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.BookingSessionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "b-1", got.ID)
	require.Equal(t, "select", got.Stage)
	require.True(t, got.RequireEmail)
	require.True(t, got.RequirePayment)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_GetBooking_NotFound(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("GetBooking", mock.Anything, "missing").Return(domain.BookingSession{}, domain.ErrBookingNotFound).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.GET("/api/bookings/:id", middleware.LanguageMiddleware(), handler.GetBooking)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The booking was not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_SetSlot_Success(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("SetSlot", mock.Anything, "b-1", "2024-06-02", "10:00").Return(
		domain.BookingSession{
			ID:            "b-1",
			Date:          "2024-06-02",
			Slot:          "10:00",
			Stage:         domain.StageSelect,
			PaymentMethod: domain.PaymentMethodStripe,
			MeetingLink:   "https://dontforget.app/meet/2024-06-02-10:00-A1B2C3",
		},
		nil,
	).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/bookings/:id/slot", middleware.LanguageMiddleware(), handler.SetSlot)

	body := `{"date":"2024-06-02","slot":"10:00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b-1/slot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.BookingSessionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "10:00", got.Slot)
	require.NotEmpty(t, got.MeetingLink)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_SetSlot_InvalidSlot(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("SetSlot", mock.Anything, "b-1", "", "13:00").Return(domain.BookingSession{}, domain.ErrInvalidSlot).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/bookings/:id/slot", middleware.LanguageMiddleware(), handler.SetSlot)

	body := `{"slot":"13:00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b-1/slot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The selected slot is not available.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_SetGuest_Success(t *testing.T) {
	payNow := true
	method := domain.PaymentMethodPaypal

	serviceMock := new(bookingServiceMock)
	serviceMock.On("SetGuest", mock.Anything, "b-1",
		domain.Guest{Name: "Jo", Phone: "0601020304", Email: "jo@example.com"},
		&payNow, &method,
	).Return(
		domain.BookingSession{
			ID:            "b-1",
			Stage:         domain.StageSelect,
			Guest:         domain.Guest{Name: "Jo", Phone: "0601020304", Email: "jo@example.com"},
			PayNow:        true,
			PaymentMethod: domain.PaymentMethodPaypal,
		},
		nil,
	).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/bookings/:id/guest", middleware.LanguageMiddleware(), handler.SetGuest)

	body := `{"name":"Jo","phone":"0601020304","email":"jo@example.com","pay_now":true,"payment_method":"paypal"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b-1/guest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.BookingSessionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Jo", got.Guest.Name)
	require.True(t, got.PayNow)
	require.Equal(t, "paypal", got.PaymentMethod)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_ContinueBooking_Success(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("ContinueBooking", mock.Anything, "b-1").Return(
		domain.BookingSession{ID: "b-1", Stage: domain.StageConfirm, PaymentMethod: domain.PaymentMethodStripe},
		nil,
	).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.POST("/api/bookings/:id/continue", middleware.LanguageMiddleware(), handler.ContinueBooking)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b-1/continue", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.BookingSessionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "confirm", got.Stage)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_ConnectTask_UnknownTask(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("ConnectTask", mock.Anything, "b-1", uint64(42)).Return(domain.BookingSession{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.POST("/api/bookings/:id/connect-task", middleware.LanguageMiddleware(), handler.ConnectTask)

	body := `{"task_id":42}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b-1/connect-task", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The task was not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_ListSlots(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("Slots").Return([]string{"09:00", "09:30"}).Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.GET("/api/booking/slots", handler.ListSlots)

	req := httptest.NewRequest(http.MethodGet, "/api/booking/slots", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"09:00", "09:30"}, got.Slots)
	serviceMock.AssertExpectations(t)
}

func TestBookingHandler_ShareLink(t *testing.T) {
	serviceMock := new(bookingServiceMock)
	serviceMock.On("ShareLink", mock.MatchedBy(func(p domain.ShareLinkParams) bool {
		return p.Owner && p.Payment == "optional" && p.TaskID != nil && *p.TaskID == 7
	})).Return("https://dontforget.app/book?owner=true&payment=optional&task=7").Once()
	handler := handlers.NewBookingHandler(serviceMock)

	router := gin.New()
	router.GET("/api/booking/share-link", handler.ShareLink)

	req := httptest.NewRequest(http.MethodGet, "/api/booking/share-link?owner=true&payment=optional&task=7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ShareLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "https://dontforget.app/book?owner=true&payment=optional&task=7", got.URL)
	serviceMock.AssertExpectations(t)
}
