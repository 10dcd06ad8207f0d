package reminder

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/polarstudio/showroom-booking-backend/internal/auth"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

type BookingLister interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
}

type Identity interface {
	GetUser(ctx context.Context, uid string) (*auth.UserInfo, error)
}

type Notifier interface {
	BookingEmail(kind string, b *domain.Booking, bookingID, clientEmail string)
}

// Scheduler enqueues a reminder mail for every booking that falls on the
// next calendar day. Runs on a cron expression with a seconds field.
type Scheduler struct {
	spec     string
	bookings BookingLister
	identity Identity
	mail     Notifier
}

func NewScheduler(spec string, bookings BookingLister, identity Identity, mail Notifier) *Scheduler {
	return &Scheduler{
		spec:     spec,
		bookings: bookings,
		identity: identity,
		mail:     mail,
	}
}

// Start initializes the cron task.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.run(time.Now())
	})
	if err != nil {
		return err
	}

	log.Printf("Reminder scheduler started (cron %q)", s.spec)
	c.Start()
	return nil
}

func (s *Scheduler) run(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		log.Printf("reminder scan failed: %v", err)
		return
	}

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	sent := 0
	for i := range bookings {
		b := &bookings[i]
		if b.Date != tomorrow {
			continue
		}

		user, err := s.identity.GetUser(ctx, b.UserID)
		if err != nil {
			log.Printf("reminder: look up user %s: %v", b.UserID, err)
			continue
		}

		s.mail.BookingEmail(domain.EventReminder, b, b.ID, user.Email)
		sent++
	}

	if sent > 0 {
		log.Printf("Enqueued %d booking reminder(s) for %s", sent, tomorrow)
	}
}
