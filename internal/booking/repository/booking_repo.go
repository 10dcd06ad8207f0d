package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

// BookingRepo reads and writes booking documents under
// artifacts/{projectID}/users/{uid}/bookings.
type BookingRepo struct {
	client    *firestore.Client
	projectID string
}

func NewBookingRepo(client *firestore.Client, projectID string) *BookingRepo {
	return &BookingRepo{client: client, projectID: projectID}
}

func (r *BookingRepo) col(uid string) *firestore.CollectionRef {
	return r.client.Collection("artifacts").Doc(r.projectID).
		Collection("users").Doc(uid).
		Collection("bookings")
}

func (r *BookingRepo) Get(ctx context.Context, uid, bookingID string) (*domain.Booking, error) {
	snap, err := r.col(uid).Doc(bookingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	return decodeBooking(snap)
}

// Create writes a new booking document with a server-assigned creation
// timestamp and returns the generated document id.
func (r *BookingRepo) Create(ctx context.Context, uid string, in domain.BookingInput, userName string) (string, error) {
	data := bookingData(uid, in, userName)
	data["timestamp"] = firestore.ServerTimestamp

	ref, _, err := r.col(uid).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	return ref.ID, nil
}

// Update merges the client-supplied fields into an existing booking and
// refreshes lastUpdated. Existence is checked by the caller.
func (r *BookingRepo) Update(ctx context.Context, uid, bookingID string, in domain.BookingInput, userName string) error {
	data := bookingData(uid, in, userName)
	data["lastUpdated"] = firestore.ServerTimestamp

	if _, err := r.col(uid).Doc(bookingID).Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("update booking %s: %w", bookingID, err)
	}
	return nil
}

func (r *BookingRepo) SetEventID(ctx context.Context, uid, bookingID, eventID string) error {
	_, err := r.col(uid).Doc(bookingID).Update(ctx, []firestore.Update{
		{Path: "googleEventId", Value: eventID},
	})
	if err != nil {
		return fmt.Errorf("persist event id on booking %s: %w", bookingID, err)
	}
	return nil
}

// SetPaymentStatus updates paymentStatus without an existence check; a
// missing document surfaces as the raw store error.
func (r *BookingRepo) SetPaymentStatus(ctx context.Context, uid, bookingID, paymentStatus string) error {
	_, err := r.col(uid).Doc(bookingID).Update(ctx, []firestore.Update{
		{Path: "paymentStatus", Value: paymentStatus},
	})
	if err != nil {
		return fmt.Errorf("update payment status on booking %s: %w", bookingID, err)
	}
	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, uid, bookingID string) error {
	if _, err := r.col(uid).Doc(bookingID).Delete(ctx); err != nil {
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}
	return nil
}

// ListAll scans the bookings collection group across every user.
func (r *BookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.iterate(r.client.CollectionGroup("bookings").Documents(ctx))
}

// ListAllByDateDesc is the admin view: all bookings, newest date first.
func (r *BookingRepo) ListAllByDateDesc(ctx context.Context) ([]domain.Booking, error) {
	q := r.client.CollectionGroup("bookings").OrderBy("date", firestore.Desc)
	return r.iterate(q.Documents(ctx))
}

func (r *BookingRepo) iterate(it *firestore.DocumentIterator) ([]domain.Booking, error) {
	defer it.Stop()

	bookings := []domain.Booking{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan bookings: %w", err)
		}

		b, err := decodeBooking(snap)
		if err != nil {
			// Skip malformed documents rather than failing the whole scan.
			log.Printf("skipping malformed booking %s: %v", snap.Ref.Path, err)
			continue
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

func decodeBooking(snap *firestore.DocumentSnapshot) (*domain.Booking, error) {
	var b domain.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", snap.Ref.ID, err)
	}
	b.ID = snap.Ref.ID
	return &b, nil
}

func bookingData(uid string, in domain.BookingInput, userName string) map[string]interface{} {
	data := map[string]interface{}{
		"date":      in.Date,
		"time":      in.Time,
		"duration":  in.Duration,
		"equipment": in.Equipment,
		"userName":  userName,
		"userId":    uid,
	}
	if in.PaymentMethod != "" {
		data["paymentMethod"] = in.PaymentMethod
	}
	if in.PaymentStatus != "" {
		data["paymentStatus"] = in.PaymentStatus
	}
	return data
}
