package auth

import (
	"context"
	"errors"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// ErrEmailExists is returned when creating a user whose email is taken.
var ErrEmailExists = errors.New("email already in use by another account")

// UserInfo is the slice of an identity-provider user record this app needs.
type UserInfo struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Identity adapts the Firebase Auth client to the operations the booking
// service performs against the identity provider.
type Identity struct {
	client *fbauth.Client
}

func NewIdentity(client *fbauth.Client) *Identity {
	return &Identity{client: client}
}

func (i *Identity) GetUser(ctx context.Context, uid string) (*UserInfo, error) {
	rec, err := i.client.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", uid, err)
	}
	return fromRecord(rec), nil
}

func (i *Identity) GetUserByEmail(ctx context.Context, email string) (*UserInfo, error) {
	rec, err := i.client.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email %s: %w", email, err)
	}
	return fromRecord(rec), nil
}

func (i *Identity) CreateUser(ctx context.Context, email, password, displayName string) (*UserInfo, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	rec, err := i.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}
	return fromRecord(rec), nil
}

func (i *Identity) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	params := (&fbauth.UserToUpdate{}).DisplayName(displayName)
	if _, err := i.client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("update user %s: %w", uid, err)
	}
	return nil
}

func (i *Identity) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := i.client.PasswordResetLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("password reset link for %s: %w", email, err)
	}
	return link, nil
}

func fromRecord(rec *fbauth.UserRecord) *UserInfo {
	return &UserInfo{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
	}
}
