package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		UserName: "Client Name",
		Date:     "2025-06-01",
		Time:     "14:00",
		Duration: 2,
		Equipment: []domain.Equipment{
			{ID: "p1", Name: "CDJ-3000", Category: domain.CategoryPlayer},
			{ID: "p2", Name: "CDJ-2000", Category: domain.CategoryPlayer},
			{ID: "m1", Name: "DJM-900", Category: domain.CategoryMixer},
			{ID: "e1", Category: domain.CategoryExtra},
		},
		PaymentStatus: domain.PaymentStatusPaid,
	}
}

func TestBookingSubject(t *testing.T) {
	assert.Equal(t, "Booking Creation Confirmed", BookingSubject(domain.EventCreate))
	assert.Equal(t, "Booking Edited", BookingSubject(domain.EventUpdate))
	assert.Equal(t, "Booking Cancelled", BookingSubject(domain.EventCancel))
	assert.Equal(t, "Upcoming Booking Reminder", BookingSubject(domain.EventReminder))
	assert.Equal(t, "Booking Notification", BookingSubject("other"))
}

func TestClientBookingBody_Create(t *testing.T) {
	body := ClientBookingBody(domain.EventCreate, sampleBooking(), "b-1")

	assert.Contains(t, body, "Dear Client Name,")
	assert.Contains(t, body, "Your booking has been created.")
	assert.Contains(t, body, "Booking ID: b-1")
	assert.Contains(t, body, "Date: 2025-06-01")
	assert.Contains(t, body, "Time: 14:00")
	assert.Contains(t, body, "Duration: 2 hours")
	assert.Contains(t, body, "Players: CDJ-3000, CDJ-2000")
	assert.Contains(t, body, "Mixers: DJM-900")
	assert.Contains(t, body, "Extras: e1")
	assert.Contains(t, body, "Payment Status: paid")
}

func TestClientBookingBody_CancelOmitsDetails(t *testing.T) {
	body := ClientBookingBody(domain.EventCancel, sampleBooking(), "b-1")

	assert.Contains(t, body, "Your booking has been cancelled.")
	assert.Contains(t, body, "Booking ID: b-1")
	assert.NotContains(t, body, "Duration")
	assert.NotContains(t, body, "Players")
	assert.NotContains(t, body, "Payment Status")
}

func TestClientBookingBody_Reminder(t *testing.T) {
	body := ClientBookingBody(domain.EventReminder, sampleBooking(), "b-1")
	assert.Contains(t, body, "This is a reminder of your upcoming booking.")
}

func TestClientBookingBody_MissingID(t *testing.T) {
	body := ClientBookingBody(domain.EventCreate, sampleBooking(), "")
	assert.Contains(t, body, "Booking ID: N/A")
}

func TestAdminBookingBody_DashboardLink(t *testing.T) {
	b := sampleBooking()

	created := AdminBookingBody(domain.EventCreate, b, "b-1", "https://app.example.test")
	assert.Contains(t, created, "A booking has been created.")
	assert.Contains(t, created, "Go to Admin Dashboard: https://app.example.test")

	cancelled := AdminBookingBody(domain.EventCancel, b, "b-1", "https://app.example.test")
	assert.NotContains(t, cancelled, "Admin Dashboard")

	noURL := AdminBookingBody(domain.EventCreate, b, "b-1", "")
	assert.NotContains(t, noURL, "Admin Dashboard")
}

func TestAccountSetupBody(t *testing.T) {
	body, err := AccountSetupBody("New User", "new@example.test", "https://reset.example.test/x", "https://app.example.test")
	require.NoError(t, err)

	assert.Contains(t, body, "Hello New User,")
	assert.Contains(t, body, `<a href="https://reset.example.test/x">Set Your Password</a>`)
	assert.Contains(t, body, "https://app.example.test")
	assert.Contains(t, body, "The Polar Team")
}

func TestAccountSetupBody_FallsBackToEmail(t *testing.T) {
	body, err := AccountSetupBody("", "new@example.test", "https://reset.example.test/x", "")
	require.NoError(t, err)

	assert.Contains(t, body, "Hello new@example.test,")
	assert.NotContains(t, body, "You can access the app here")
}
