package domain

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrProfileNotFound     = errors.New("user profile not found")
	ErrMissingEquipment    = errors.New("booking requires at least one player and one mixer")
	ErrInsufficientCredits = errors.New("insufficient credits")
)
