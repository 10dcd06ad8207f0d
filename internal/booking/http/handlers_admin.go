package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminListBookings returns every booking across all users, newest date
// first, each annotated with its document id.
func (h *Handler) AdminListBookings(c *gin.Context) {
	bookings, err := h.svc.ListAllBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AdminListUsers returns every user profile.
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.svc.ListAllUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminCreateBooking creates a booking for a user identified by email.
func (h *Handler) AdminCreateBooking(c *gin.Context) {
	var req adminCreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil || req.UserEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User email is required."})
		return
	}

	bookingID, err := h.svc.CreateBookingForEmail(c.Request.Context(), req.UserEmail, req.BookingData, req.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookingId": bookingID})
}

// AdminConfirmBooking creates or edits a booking for an explicit target user.
func (h *Handler) AdminConfirmBooking(c *gin.Context) {
	var req confirmBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required for admin booking operations."})
		return
	}

	bookingID, err := h.svc.ConfirmBooking(c.Request.Context(), req.UserID, req.BookingData, req.UserName, req.EditingBookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookingId": bookingID})
}

// AdminCancelBooking cancels a booking owned by an explicit target user.
func (h *Handler) AdminCancelBooking(c *gin.Context) {
	var req cancelBookingReq
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID and User ID are required."})
		return
	}

	if err := h.svc.CancelBooking(c.Request.Context(), req.UserID, req.BookingID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled successfully by admin."})
}

// AdminAddCredits adjusts a user's credit balance by a signed amount. There
// is no floor; a negative amount can drive the balance negative.
func (h *Handler) AdminAddCredits(c *gin.Context) {
	var req addCreditsReq
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required."})
		return
	}

	balance, err := h.svc.AddCredits(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "credits": balance})
}

// AdminCreateUser provisions a new account and mails a password-reset link.
func (h *Handler) AdminCreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), strings.TrimSpace(req.Email), strings.TrimSpace(req.DisplayName))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"uid":         user.UID,
		"email":       user.Email,
		"displayName": user.DisplayName,
	})
}
