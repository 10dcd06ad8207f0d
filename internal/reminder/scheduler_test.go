package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarstudio/showroom-booking-backend/internal/auth"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

type stubLister struct {
	bookings []domain.Booking
	err      error
}

func (s *stubLister) ListAll(_ context.Context) ([]domain.Booking, error) {
	return s.bookings, s.err
}

type stubIdentity struct {
	users map[string]*auth.UserInfo
}

func (s *stubIdentity) GetUser(_ context.Context, uid string) (*auth.UserInfo, error) {
	if u, ok := s.users[uid]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

type sentMail struct {
	kind      string
	bookingID string
	email     string
}

type stubNotifier struct {
	sent []sentMail
}

func (s *stubNotifier) BookingEmail(kind string, _ *domain.Booking, bookingID, clientEmail string) {
	s.sent = append(s.sent, sentMail{kind: kind, bookingID: bookingID, email: clientEmail})
}

func TestRun_SendsOnlyNextDayReminders(t *testing.T) {
	now := time.Date(2025, 5, 31, 7, 0, 0, 0, time.UTC)

	lister := &stubLister{bookings: []domain.Booking{
		{ID: "b-1", UserID: "uid-1", Date: "2025-06-01"},
		{ID: "b-2", UserID: "uid-1", Date: "2025-06-02"},
		{ID: "b-3", UserID: "uid-2", Date: "2025-06-01"},
		{ID: "b-4", UserID: "uid-1", Date: "2025-05-31"},
	}}
	identity := &stubIdentity{users: map[string]*auth.UserInfo{
		"uid-1": {UID: "uid-1", Email: "one@example.test"},
		"uid-2": {UID: "uid-2", Email: "two@example.test"},
	}}
	mail := &stubNotifier{}

	NewScheduler("0 0 7 * * *", lister, identity, mail).run(now)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, sentMail{kind: domain.EventReminder, bookingID: "b-1", email: "one@example.test"}, mail.sent[0])
	assert.Equal(t, sentMail{kind: domain.EventReminder, bookingID: "b-3", email: "two@example.test"}, mail.sent[1])
}

func TestRun_SkipsUnresolvableUsers(t *testing.T) {
	now := time.Date(2025, 5, 31, 7, 0, 0, 0, time.UTC)

	lister := &stubLister{bookings: []domain.Booking{
		{ID: "b-1", UserID: "ghost", Date: "2025-06-01"},
		{ID: "b-2", UserID: "uid-1", Date: "2025-06-01"},
	}}
	identity := &stubIdentity{users: map[string]*auth.UserInfo{
		"uid-1": {UID: "uid-1", Email: "one@example.test"},
	}}
	mail := &stubNotifier{}

	NewScheduler("0 0 7 * * *", lister, identity, mail).run(now)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "b-2", mail.sent[0].bookingID)
}

func TestRun_ScanFailureSendsNothing(t *testing.T) {
	mail := &stubNotifier{}
	s := NewScheduler("0 0 7 * * *", &stubLister{err: errors.New("firestore down")}, &stubIdentity{}, mail)

	s.run(time.Now())
	assert.Empty(t, mail.sent)
}

func TestRun_MonthBoundary(t *testing.T) {
	now := time.Date(2025, 5, 31, 7, 0, 0, 0, time.UTC)

	lister := &stubLister{bookings: []domain.Booking{
		{ID: "b-1", UserID: "uid-1", Date: "2025-06-01"},
	}}
	identity := &stubIdentity{users: map[string]*auth.UserInfo{
		"uid-1": {UID: "uid-1", Email: "one@example.test"},
	}}
	mail := &stubNotifier{}

	NewScheduler("0 0 7 * * *", lister, identity, mail).run(now)
	assert.Len(t, mail.sent, 1)
}

func TestStart_RejectsBadSpec(t *testing.T) {
	s := NewScheduler("not a cron spec", &stubLister{}, &stubIdentity{}, &stubNotifier{})
	assert.Error(t, s.Start())
}
