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

// ProfileRepo reads and writes the single profile document at
// artifacts/{projectID}/users/{uid}/profiles/userProfile.
type ProfileRepo struct {
	client    *firestore.Client
	projectID string
}

func NewProfileRepo(client *firestore.Client, projectID string) *ProfileRepo {
	return &ProfileRepo{client: client, projectID: projectID}
}

func (r *ProfileRepo) doc(uid string) *firestore.DocumentRef {
	return r.client.Collection("artifacts").Doc(r.projectID).
		Collection("users").Doc(uid).
		Collection("profiles").Doc("userProfile")
}

func (r *ProfileRepo) Get(ctx context.Context, uid string) (*domain.UserProfile, error) {
	snap, err := r.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", uid, err)
	}

	var p domain.UserProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", uid, err)
	}
	if p.UserID == "" {
		p.UserID = uid
	}
	return &p, nil
}

// Save merges displayName and email into the profile, refreshing lastUpdated.
func (r *ProfileRepo) Save(ctx context.Context, uid, displayName, email string) error {
	_, err := r.doc(uid).Set(ctx, map[string]interface{}{
		"userId":      uid,
		"displayName": displayName,
		"email":       email,
		"lastUpdated": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", uid, err)
	}
	return nil
}

// EnsureProfile upserts a profile for a newly created account. A brand-new
// profile starts with zero credits; an existing one keeps its balance.
func (r *ProfileRepo) EnsureProfile(ctx context.Context, uid, displayName, email string) error {
	ref := r.doc(uid)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		data := map[string]interface{}{
			"userId":      uid,
			"displayName": displayName,
			"email":       email,
			"lastUpdated": firestore.ServerTimestamp,
		}
		if status.Code(err) == codes.NotFound {
			data["createdAt"] = firestore.ServerTimestamp
			data["credits"] = 0
		}
		return tx.Set(ref, data, firestore.MergeAll)
	})
	if err != nil {
		return fmt.Errorf("ensure profile %s: %w", uid, err)
	}
	return nil
}

// AddCredits adjusts the balance by a signed amount and returns the new
// balance. No lower bound is enforced; a negative amount can drive the
// balance negative.
func (r *ProfileRepo) AddCredits(ctx context.Context, uid string, amount int64) (int64, error) {
	ref := r.doc(uid)
	var balance int64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrProfileNotFound
			}
			return err
		}

		var p domain.UserProfile
		if err := snap.DataTo(&p); err != nil {
			return fmt.Errorf("decode profile %s: %w", uid, err)
		}
		balance = p.Credits + amount

		return tx.Update(ref, []firestore.Update{
			{Path: "credits", Value: firestore.Increment(amount)},
			{Path: "lastUpdated", Value: firestore.ServerTimestamp},
		})
	})
	if err == domain.ErrProfileNotFound {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("add credits for %s: %w", uid, err)
	}
	return balance, nil
}

// DeductCredit is a single conditional decrement: the balance check and the
// decrement run in one transaction, so two concurrent bookings against a
// balance of 1 cannot both succeed.
func (r *ProfileRepo) DeductCredit(ctx context.Context, uid string) error {
	ref := r.doc(uid)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrProfileNotFound
			}
			return err
		}

		var p domain.UserProfile
		if err := snap.DataTo(&p); err != nil {
			return fmt.Errorf("decode profile %s: %w", uid, err)
		}
		if p.Credits < 1 {
			return domain.ErrInsufficientCredits
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "credits", Value: firestore.Increment(-1)},
			{Path: "lastUpdated", Value: firestore.ServerTimestamp},
		})
	})
	if err == domain.ErrProfileNotFound || err == domain.ErrInsufficientCredits {
		return err
	}
	if err != nil {
		return fmt.Errorf("deduct credit for %s: %w", uid, err)
	}
	return nil
}

// ListAll scans the profiles collection group. The owning uid is recovered
// from the document's parent path, not from a stored field.
func (r *ProfileRepo) ListAll(ctx context.Context) ([]domain.UserProfile, error) {
	it := r.client.CollectionGroup("profiles").Documents(ctx)
	defer it.Stop()

	profiles := []domain.UserProfile{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan profiles: %w", err)
		}

		var p domain.UserProfile
		if err := snap.DataTo(&p); err != nil {
			log.Printf("skipping malformed profile %s: %v", snap.Ref.Path, err)
			continue
		}
		// profiles/userProfile sits under users/{uid}.
		if parent := snap.Ref.Parent.Parent; parent != nil {
			p.UserID = parent.ID
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
