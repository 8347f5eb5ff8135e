package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/service"
)

type BookingsHandler struct {
	bookingSvs BookingServicer
}

func NewBookingsHandler(bookingSvs BookingServicer) *BookingsHandler {
	return &BookingsHandler{
		bookingSvs: bookingSvs,
	}
}

type BookingResponse struct {
	ID              uuid.UUID                `json:"id"`
	MentorID        int64                    `json:"mentor_id"`
	StudentID       int64                    `json:"student_id"`
	StartsAt        time.Time                `json:"starts_at"`
	DurationMinutes int32                    `json:"duration_minutes"`
	SessionType     string                   `json:"session_type,omitempty"`
	Message         string                   `json:"message,omitempty"`
	Status          domain.BookingStatusType `json:"status"`
	PaymentStatus   domain.PaymentStatusType `json:"payment_status"`
	Amount          float64                  `json:"amount"`
	CreatedAt       time.Time                `json:"created_at"`
}

func newBookingResponse(booking domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		MentorID:        booking.MentorID,
		StudentID:       booking.StudentID,
		StartsAt:        booking.StartsAt,
		DurationMinutes: booking.DurationMinutes,
		SessionType:     booking.SessionType,
		Message:         booking.Message,
		Status:          booking.Status,
		PaymentStatus:   booking.PaymentStatus,
		Amount:          booking.Amount.InexactFloat64(),
		CreatedAt:       booking.CreatedAt,
	}
}

type BookingCreateParams struct {
	MentorID        int64     `binding:"required"                json:"mentor_id"`
	StartsAt        time.Time `binding:"required"                json:"starts_at"`
	DurationMinutes int32     `binding:"required,min=15,max=480" json:"duration_minutes"`
	SessionType     string    `binding:"omitempty,max=50"        json:"session_type"`
	Message         string    `binding:"omitempty,max_bytes=2000" json:"message"`
}

// Create POST RouteGroup + BookingsRoute. Создает бронь сессии у ментора.
func (h *BookingsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params BookingCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	booking, createErr := h.bookingSvs.Book(reqCtx, currentUserID, service.BookArgs{
		MentorID:        params.MentorID,
		StartsAt:        params.StartsAt,
		DurationMinutes: params.DurationMinutes,
		SessionType:     params.SessionType,
		Message:         params.Message,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, domain.ErrBookingConflict):
			_ = c.AbortWithError(http.StatusConflict, errors.New("mentor is busy at the requested time")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(createErr, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(createErr, domain.ErrWrongRole):
			c.AbortWithStatus(http.StatusForbidden)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": newBookingResponse(*booking)})
}

// Index GET RouteGroup + BookingsRoute. Список броней текущего юзера
// (студента либо ментора).
func (h *BookingsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bookings, err := h.bookingSvs.List(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if len(bookings) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		response[i] = newBookingResponse(booking)
	}

	c.JSON(http.StatusOK, gin.H{"data": response})
}

const (
	ManageActionConfirm  = "confirm"
	ManageActionComplete = "complete"
	ManageActionCancel   = "cancel"
)

type BookingManageParams struct {
	Action        string `binding:"required,oneof=confirm complete cancel" json:"action"`
	PaymentStatus string `binding:"omitempty,oneof=paid refunded"          json:"payment_status"`
}

// Manage PATCH RouteGroup + BookingRoute. Переводит бронь по жизненному циклу:
// confirm и complete доступны только менторy, cancel - обеим сторонам брони.
func (h *BookingsHandler) Manage(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	bookingID, parseErr := uuid.Parse(c.Param("bookingID"))
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	var params BookingManageParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var booking *domain.Booking
	var err error
	switch params.Action {
	case ManageActionConfirm:
		booking, err = h.bookingSvs.Confirm(reqCtx, currentUserID, bookingID)
	case ManageActionComplete:
		paymentStatus := domain.PaymentStatusPaid
		if params.PaymentStatus != "" {
			paymentStatus = domain.PaymentStatusType(params.PaymentStatus)
		}
		booking, err = h.bookingSvs.Complete(reqCtx, currentUserID, bookingID, paymentStatus)
	case ManageActionCancel:
		booking, err = h.bookingSvs.Cancel(reqCtx, currentUserID, bookingID)
	}

	if err != nil {
		var transitionErr *domain.InvalidTransitionError
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrOwnerConflict):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.As(err, &transitionErr):
			_ = c.AbortWithError(http.StatusConflict, transitionErr).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newBookingResponse(*booking)})
}
