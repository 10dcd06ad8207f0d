package http

import "github.com/polarstudio/showroom-booking-backend/internal/booking/domain"

type updateProfileReq struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type confirmBookingReq struct {
	BookingData      domain.BookingInput `json:"bookingData"`
	UserName         string              `json:"userName"`
	EditingBookingID string              `json:"editingBookingId"`
	// UserID targets another user's booking; admin routes only.
	UserID string `json:"userId"`
}

type cancelBookingReq struct {
	BookingID string `json:"bookingId"`
	// UserID identifies the booking owner; admin routes only.
	UserID string `json:"userId"`
}

type confirmPaymentReq struct {
	BookingID string `json:"bookingId"`
}

type adminCreateBookingReq struct {
	BookingData domain.BookingInput `json:"bookingData"`
	UserName    string              `json:"userName"`
	UserEmail   string              `json:"userEmail"`
}

type addCreditsReq struct {
	UserID string `json:"userId"`
	Amount int64  `json:"amount"`
}

type createUserReq struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
