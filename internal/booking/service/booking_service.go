package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/polarstudio/showroom-booking-backend/internal/auth"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

// BookingStore is the document-store handle for bookings.
type BookingStore interface {
	Get(ctx context.Context, uid, bookingID string) (*domain.Booking, error)
	Create(ctx context.Context, uid string, in domain.BookingInput, userName string) (string, error)
	Update(ctx context.Context, uid, bookingID string, in domain.BookingInput, userName string) error
	SetEventID(ctx context.Context, uid, bookingID, eventID string) error
	SetPaymentStatus(ctx context.Context, uid, bookingID, paymentStatus string) error
	Delete(ctx context.Context, uid, bookingID string) error
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListAllByDateDesc(ctx context.Context) ([]domain.Booking, error)
}

// ProfileStore is the document-store handle for user profiles and credits.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*domain.UserProfile, error)
	Save(ctx context.Context, uid, displayName, email string) error
	EnsureProfile(ctx context.Context, uid, displayName, email string) error
	AddCredits(ctx context.Context, uid string, amount int64) (int64, error)
	DeductCredit(ctx context.Context, uid string) error
	ListAll(ctx context.Context) ([]domain.UserProfile, error)
}

// Identity is the identity-provider surface the service needs.
type Identity interface {
	GetUser(ctx context.Context, uid string) (*auth.UserInfo, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserInfo, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*auth.UserInfo, error)
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// Calendar mirrors bookings into the external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, bookingID string, b *domain.Booking, userEmail string) (string, error)
	UpdateEvent(ctx context.Context, eventID string, b *domain.Booking, userEmail string) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// Notifier enqueues fire-and-forget mail; implementations never return errors.
type Notifier interface {
	BookingEmail(kind string, b *domain.Booking, bookingID, clientEmail string)
	AccountSetupEmail(email, displayName, resetLink string)
}

// SlotsCache is the optional cache over the cross-user slots scan.
type SlotsCache interface {
	Get(ctx context.Context) ([]domain.Booking, bool)
	Set(ctx context.Context, bookings []domain.Booking)
	Invalidate(ctx context.Context)
}

// BookingService orchestrates the document store, calendar, mail and
// identity provider for every booking operation. Firestore is the source of
// truth; the calendar is a derived mirror and mail is always best-effort.
type BookingService struct {
	bookings BookingStore
	profiles ProfileStore
	identity Identity
	calendar Calendar
	mail     Notifier
	cache    SlotsCache
}

func NewBookingService(bookings BookingStore, profiles ProfileStore, identity Identity, calendar Calendar, mail Notifier, cache SlotsCache) *BookingService {
	return &BookingService{
		bookings: bookings,
		profiles: profiles,
		identity: identity,
		calendar: calendar,
		mail:     mail,
		cache:    cache,
	}
}

// UpdateProfile renames the identity-provider record and merges the profile
// document.
func (s *BookingService) UpdateProfile(ctx context.Context, uid, displayName, email string) error {
	displayName = strings.TrimSpace(displayName)

	if err := s.identity.UpdateDisplayName(ctx, uid, displayName); err != nil {
		return err
	}
	return s.profiles.Save(ctx, uid, displayName, email)
}

// ConfirmBooking creates a booking, or edits one when editingID is set, for
// the user identified by uid. The credit decrement, when the payment method
// is credits, happens before the booking write; it is not compensated if the
// write later fails.
func (s *BookingService) ConfirmBooking(ctx context.Context, uid string, in domain.BookingInput, userName, editingID string) (string, error) {
	if err := domain.ValidateEquipment(in.Equipment); err != nil {
		return "", err
	}

	if in.PaymentMethod == domain.PaymentMethodCredits {
		if err := s.profiles.DeductCredit(ctx, uid); err != nil {
			return "", err
		}
		in.PaymentStatus = domain.PaymentStatusPaid
	}

	user, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}

	bookingID := editingID
	if editingID != "" {
		existing, err := s.bookings.Get(ctx, uid, editingID)
		if err != nil {
			return "", err
		}

		if err := s.bookings.Update(ctx, uid, editingID, in, userName); err != nil {
			return "", err
		}

		b := materialize(uid, userName, editingID, in)
		if existing.GoogleEventID != "" {
			if err := s.calendar.UpdateEvent(ctx, existing.GoogleEventID, b, user.Email); err != nil {
				return "", err
			}
		} else {
			// Older bookings may predate calendar mirroring.
			log.Printf("booking %s has no calendar event, creating one", editingID)
			eventID, err := s.calendar.CreateEvent(ctx, editingID, b, user.Email)
			if err != nil {
				return "", err
			}
			if err := s.bookings.SetEventID(ctx, uid, editingID, eventID); err != nil {
				return "", err
			}
		}
	} else {
		id, err := s.bookings.Create(ctx, uid, in, userName)
		if err != nil {
			return "", err
		}
		bookingID = id

		b := materialize(uid, userName, id, in)
		eventID, err := s.calendar.CreateEvent(ctx, id, b, user.Email)
		if err != nil {
			return "", err
		}
		if err := s.bookings.SetEventID(ctx, uid, id, eventID); err != nil {
			return "", err
		}
	}

	s.invalidateSlots(ctx)

	kind := domain.EventCreate
	if editingID != "" {
		kind = domain.EventUpdate
	}
	s.mail.BookingEmail(kind, materialize(uid, userName, bookingID, in), bookingID, user.Email)

	return bookingID, nil
}

// CancelBooking hard-deletes the booking, then best-effort deletes its
// calendar event and enqueues cancellation mail.
func (s *BookingService) CancelBooking(ctx context.Context, uid, bookingID string) error {
	existing, err := s.bookings.Get(ctx, uid, bookingID)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, uid, bookingID); err != nil {
		return err
	}

	if existing.GoogleEventID != "" {
		if err := s.calendar.DeleteEvent(ctx, existing.GoogleEventID); err != nil {
			log.Printf("delete calendar event for booking %s: %v", bookingID, err)
		}
	}

	s.invalidateSlots(ctx)

	email := ""
	if user, err := s.identity.GetUser(ctx, uid); err != nil {
		log.Printf("look up user %s for cancellation mail: %v", uid, err)
	} else {
		email = user.Email
	}
	s.mail.BookingEmail(domain.EventCancel, existing, bookingID, email)

	return nil
}

// ConfirmPayment marks a booking paid directly, independent of the credits
// path. There is no existence check beyond the store's own update semantics.
func (s *BookingService) ConfirmPayment(ctx context.Context, uid, bookingID string) error {
	if err := s.bookings.SetPaymentStatus(ctx, uid, bookingID, domain.PaymentStatusPaid); err != nil {
		return err
	}
	s.invalidateSlots(ctx)
	return nil
}

// ListBookedSlots returns every booking across all users. The caller filters
// by date client-side.
func (s *BookingService) ListBookedSlots(ctx context.Context) ([]domain.Booking, error) {
	if s.cache != nil {
		if bookings, ok := s.cache.Get(ctx); ok {
			return bookings, nil
		}
	}

	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, bookings)
	}
	return bookings, nil
}

// ListAllBookings is the admin view: every booking, newest date first.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAllByDateDesc(ctx)
}

// ListAllUsers is the admin view of every user profile.
func (s *BookingService) ListAllUsers(ctx context.Context) ([]domain.UserProfile, error) {
	return s.profiles.ListAll(ctx)
}

// AddCredits adjusts a user's balance by a signed amount and returns the new
// balance. No floor is enforced.
func (s *BookingService) AddCredits(ctx context.Context, uid string, amount int64) (int64, error) {
	return s.profiles.AddCredits(ctx, uid, amount)
}

// CreateUser provisions an identity-provider account with a throwaway
// password, mails a password-reset link, and writes the profile document
// before returning so the response never races the profile write.
func (s *BookingService) CreateUser(ctx context.Context, email, displayName string) (*auth.UserInfo, error) {
	password, err := generatePassword(12)
	if err != nil {
		return nil, fmt.Errorf("generate temporary password: %w", err)
	}

	user, err := s.identity.CreateUser(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}

	resetLink, err := s.identity.PasswordResetLink(ctx, email)
	if err != nil {
		return nil, err
	}

	s.mail.AccountSetupEmail(email, displayName, resetLink)

	profileName := displayName
	if profileName == "" {
		profileName = email
	}
	if err := s.profiles.EnsureProfile(ctx, user.UID, profileName, email); err != nil {
		return nil, err
	}

	return user, nil
}

// CreateBookingForEmail resolves the booking owner by email, then runs the
// standard create path on their behalf.
func (s *BookingService) CreateBookingForEmail(ctx context.Context, email string, in domain.BookingInput, userName string) (string, error) {
	user, err := s.identity.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return s.ConfirmBooking(ctx, user.UID, in, userName, "")
}

func (s *BookingService) invalidateSlots(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func materialize(uid, userName, bookingID string, in domain.BookingInput) *domain.Booking {
	return &domain.Booking{
		ID:            bookingID,
		UserID:        uid,
		UserName:      userName,
		Date:          in.Date,
		Time:          in.Time,
		Duration:      in.Duration,
		Equipment:     in.Equipment,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
	}
}
