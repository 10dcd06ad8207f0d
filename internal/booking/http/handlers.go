package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polarstudio/showroom-booking-backend/internal/auth"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

// BookingService is the orchestration surface the handlers depend on.
type BookingService interface {
	UpdateProfile(ctx context.Context, uid, displayName, email string) error
	ConfirmBooking(ctx context.Context, uid string, in domain.BookingInput, userName, editingID string) (string, error)
	CancelBooking(ctx context.Context, uid, bookingID string) error
	ConfirmPayment(ctx context.Context, uid, bookingID string) error
	ListBookedSlots(ctx context.Context) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	ListAllUsers(ctx context.Context) ([]domain.UserProfile, error)
	AddCredits(ctx context.Context, uid string, amount int64) (int64, error)
	CreateUser(ctx context.Context, email, displayName string) (*auth.UserInfo, error)
	CreateBookingForEmail(ctx context.Context, email string, in domain.BookingInput, userName string) (string, error)
}

type Handler struct {
	svc BookingService
}

func NewHandler(svc BookingService) *Handler {
	return &Handler{svc: svc}
}

// UpdateProfile updates the caller's display name and profile document.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.DisplayName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `The "displayName" argument is required and must be a non-empty string.`})
		return
	}

	if err := h.svc.UpdateProfile(c.Request.Context(), uid, req.DisplayName, req.Email); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User profile updated successfully!"})
}

// ConfirmBooking creates or edits a booking owned by the caller.
func (h *Handler) ConfirmBooking(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req confirmBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bookingID, err := h.svc.ConfirmBooking(c.Request.Context(), uid, req.BookingData, req.UserName, req.EditingBookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookingId": bookingID})
}

// CancelBooking cancels a booking owned by the caller.
func (h *Handler) CancelBooking(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req cancelBookingReq
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required."})
		return
	}

	if err := h.svc.CancelBooking(c.Request.Context(), uid, req.BookingID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled successfully."})
}

// CheckBookedSlots returns all bookings across all users. The date parameter
// is required but intentionally not applied; the frontend filters.
func (h *Handler) CheckBookedSlots(c *gin.Context) {
	if c.Query("date") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required."})
		return
	}

	bookings, err := h.svc.ListBookedSlots(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookedSlots": bookings})
}

// ConfirmPayment marks one of the caller's bookings as paid.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req confirmPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required."})
		return
	}

	if err := h.svc.ConfirmPayment(c.Request.Context(), uid, req.BookingID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment confirmed successfully!"})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingEquipment),
		errors.Is(err, domain.ErrInsufficientCredits):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": "The email address is already in use by another account."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
