package http

import "github.com/gin-gonic/gin"

// Register wires the booking routes onto the authenticated /api group.
// Admin routes additionally pass through the adminOnly middleware.
func (h *Handler) Register(api *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	api.POST("/update-profile", h.UpdateProfile)
	api.POST("/confirm-booking", h.ConfirmBooking)
	api.POST("/cancel-booking", h.CancelBooking)
	api.GET("/check-booked-slots", h.CheckBookedSlots)
	api.POST("/confirm-payment", h.ConfirmPayment)

	admin := api.Group("/admin")
	admin.Use(adminOnly)
	admin.GET("/bookings", h.AdminListBookings)
	admin.POST("/bookings", h.AdminCreateBooking)
	admin.GET("/users", h.AdminListUsers)
	admin.POST("/add-credits", h.AdminAddCredits)
	admin.POST("/create-user", h.AdminCreateUser)
	admin.POST("/confirm-booking", h.AdminConfirmBooking)
	admin.POST("/cancel-booking", h.AdminCancelBooking)
}
