package domain

import "time"

const (
	CategoryPlayer = "player"
	CategoryMixer  = "mixer"
	CategoryExtra  = "extra"

	PaymentMethodCredits = "credits"
	PaymentStatusPaid    = "paid"

	RoleAdmin = "admin"
)

// Mail event kinds for booking lifecycle notifications.
const (
	EventCreate   = "create"
	EventUpdate   = "update"
	EventCancel   = "cancel"
	EventReminder = "reminder"
)

// Equipment is one reserved item. Category is one of player, mixer or extra.
type Equipment struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name,omitempty" firestore:"name,omitempty"`
	Category string `json:"category" firestore:"category"`
}

// Booking is a reservation of the showroom for a date/time/duration with
// the equipment selected by the client. The Firestore document id is carried
// in ID and never stored as a field.
type Booking struct {
	ID            string      `json:"id,omitempty" firestore:"-"`
	UserID        string      `json:"userId" firestore:"userId"`
	UserName      string      `json:"userName" firestore:"userName"`
	Date          string      `json:"date" firestore:"date"`
	Time          string      `json:"time" firestore:"time"`
	Duration      float64     `json:"duration" firestore:"duration"`
	Equipment     []Equipment `json:"equipment" firestore:"equipment"`
	PaymentMethod string      `json:"paymentMethod,omitempty" firestore:"paymentMethod,omitempty"`
	PaymentStatus string      `json:"paymentStatus,omitempty" firestore:"paymentStatus,omitempty"`
	GoogleEventID string      `json:"googleEventId,omitempty" firestore:"googleEventId,omitempty"`
	Timestamp     time.Time   `json:"timestamp,omitempty" firestore:"timestamp,omitempty"`
	LastUpdated   time.Time   `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
}

// BookingInput is the client-supplied portion of a booking.
type BookingInput struct {
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Duration      float64     `json:"duration"`
	Equipment     []Equipment `json:"equipment"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
}

// UserProfile lives at artifacts/{projectID}/users/{uid}/profiles/userProfile.
type UserProfile struct {
	UserID      string    `json:"userId" firestore:"userId"`
	DisplayName string    `json:"displayName" firestore:"displayName"`
	Email       string    `json:"email" firestore:"email"`
	Role        string    `json:"role,omitempty" firestore:"role,omitempty"`
	Credits     int64     `json:"credits" firestore:"credits"`
	CreatedAt   time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
}

// HasCategory reports whether at least one equipment entry has the category.
func HasCategory(items []Equipment, category string) bool {
	for _, item := range items {
		if item.Category == category {
			return true
		}
	}
	return false
}

// ValidateEquipment enforces the booking invariant: every confirmed booking
// must carry at least one player and one mixer.
func ValidateEquipment(items []Equipment) error {
	if !HasCategory(items, CategoryPlayer) || !HasCategory(items, CategoryMixer) {
		return ErrMissingEquipment
	}
	return nil
}
