package calendar

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/polarstudio/showroom-booking-backend/config"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

// Client is a thin adapter over the Google Calendar API targeting one fixed
// calendar. Create/update/delete forward directly; failures propagate to the
// caller with no retry.
type Client struct {
	svc        *gcal.Service
	calendarID string
	timeZone   string
	location   *time.Location
}

// NewClient authenticates with a service-account JWT scoped to the calendar
// API and resolves the fixed time zone all events are written in.
func NewClient(ctx context.Context, cfg *config.CalendarConfig) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read calendar credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse calendar credentials: %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load calendar time zone %q: %w", cfg.TimeZone, err)
	}

	return &Client{
		svc:        svc,
		calendarID: cfg.CalendarID,
		timeZone:   cfg.TimeZone,
		location:   loc,
	}, nil
}

// CreateEvent inserts an event mirroring the booking and returns its id.
func (c *Client) CreateEvent(ctx context.Context, bookingID string, b *domain.Booking, userEmail string) (string, error) {
	event, err := c.buildEvent(bookingID, b, userEmail)
	if err != nil {
		return "", err
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert calendar event for booking %s: %w", bookingID, err)
	}
	return created.Id, nil
}

// UpdateEvent rewrites the event for an edited booking.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, b *domain.Booking, userEmail string) error {
	event, err := c.buildEvent(b.ID, b, userEmail)
	if err != nil {
		return err
	}

	if _, err := c.svc.Events.Update(c.calendarID, eventID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("update calendar event %s: %w", eventID, err)
	}
	return nil
}

// DeleteEvent removes the event mirroring a cancelled booking.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func (c *Client) buildEvent(bookingID string, b *domain.Booking, userEmail string) (*gcal.Event, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, c.location)
	if err != nil {
		return nil, fmt.Errorf("parse booking start %q %q: %w", b.Date, b.Time, err)
	}
	end := start.Add(time.Duration(b.Duration * float64(time.Hour)))

	return &gcal.Event{
		Summary:     "Booking: " + b.UserName,
		Description: eventDescription(bookingID, b, userEmail),
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.timeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.timeZone,
		},
	}, nil
}

func eventDescription(bookingID string, b *domain.Booking, userEmail string) string {
	return fmt.Sprintf("Booking ID: %s\nUser: %s\nEmail: %s\nPayment: %s\nEquipment: %s",
		bookingID, b.UserName, userEmail,
		formatPaymentStatus(b.PaymentStatus),
		formatEquipment(b.Equipment))
}

func formatEquipment(items []domain.Equipment) string {
	if len(items) == 0 {
		return "None"
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.Name != "":
			names = append(names, item.Name)
		case item.ID != "":
			names = append(names, item.ID)
		default:
			names = append(names, "Unknown Equipment")
		}
	}
	return strings.Join(names, ", ")
}

func formatPaymentStatus(paymentStatus string) string {
	if paymentStatus == "" {
		return "N/A"
	}
	return paymentStatus
}
