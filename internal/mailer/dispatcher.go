package mailer

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

const (
	queueSize  = 64
	retryDelay = 5 * time.Second
)

type sender interface {
	Send(Message) error
}

type job struct {
	id  string
	msg Message
}

// Dispatcher makes email an explicit fire-and-forget side effect: callers
// enqueue and return immediately, a single worker delivers with one retry,
// and every failure is logged per recipient and never surfaced.
type Dispatcher struct {
	sender       sender
	adminEmails  []string
	dashboardURL string
	retryDelay   time.Duration

	queue chan job
	wg    sync.WaitGroup
}

func NewDispatcher(client *Client, adminEmails []string, dashboardURL string) *Dispatcher {
	return newDispatcher(client, adminEmails, dashboardURL, retryDelay)
}

func newDispatcher(s sender, adminEmails []string, dashboardURL string, delay time.Duration) *Dispatcher {
	d := &Dispatcher{
		sender:       s,
		adminEmails:  adminEmails,
		dashboardURL: dashboardURL,
		retryDelay:   delay,
		queue:        make(chan job, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for j := range d.queue {
		if err := d.sender.Send(j.msg); err == nil {
			continue
		} else {
			log.Printf("mail %s to %s failed, retrying once: %v", j.id, j.msg.To, err)
		}

		time.Sleep(d.retryDelay)
		if err := d.sender.Send(j.msg); err != nil {
			log.Printf("mail %s to %s failed permanently: %v", j.id, j.msg.To, err)
		}
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) enqueue(msg Message) {
	select {
	case d.queue <- job{id: uuid.NewString(), msg: msg}:
	default:
		log.Printf("mail queue full, dropping message to %s", msg.To)
	}
}

// BookingEmail enqueues one copy for the client and one per configured
// administrator address.
func (d *Dispatcher) BookingEmail(kind string, b *domain.Booking, bookingID, clientEmail string) {
	subject := BookingSubject(kind)

	if clientEmail != "" {
		d.enqueue(Message{
			To:      clientEmail,
			Subject: subject,
			Body:    ClientBookingBody(kind, b, bookingID),
		})
	}

	for _, admin := range d.adminEmails {
		d.enqueue(Message{
			To:      admin,
			Subject: "Admin Notification: " + subject,
			Body:    AdminBookingBody(kind, b, bookingID, d.dashboardURL),
		})
	}
}

// AccountSetupEmail enqueues the password-reset mail for a new account.
func (d *Dispatcher) AccountSetupEmail(email, displayName, resetLink string) {
	body, err := AccountSetupBody(displayName, email, resetLink, d.dashboardURL)
	if err != nil {
		log.Printf("account setup mail for %s: %v", email, err)
		return
	}

	d.enqueue(Message{
		To:      email,
		Subject: "Set Up Your Showroom Booking App Account",
		Body:    body,
		HTML:    true,
	})
}
