package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

// BookingSubject maps a lifecycle event to its mail subject.
func BookingSubject(kind string) string {
	switch kind {
	case domain.EventCreate:
		return "Booking Creation Confirmed"
	case domain.EventUpdate:
		return "Booking Edited"
	case domain.EventCancel:
		return "Booking Cancelled"
	case domain.EventReminder:
		return "Upcoming Booking Reminder"
	default:
		return "Booking Notification"
	}
}

func pastTense(kind string) string {
	switch kind {
	case domain.EventCreate:
		return "created"
	case domain.EventUpdate:
		return "updated"
	case domain.EventCancel:
		return "cancelled"
	default:
		return kind + "d"
	}
}

// ClientBookingBody renders the plain-text mail sent to the booking owner.
func ClientBookingBody(kind string, b *domain.Booking, bookingID string) string {
	if kind == domain.EventReminder {
		return fmt.Sprintf("Dear %s,\n\nThis is a reminder of your upcoming booking.\n\nDetails:\n%s\nThank you.",
			b.UserName, bookingDetails(kind, b, bookingID))
	}

	return fmt.Sprintf("Dear %s,\n\nYour booking has been %s.\n\nDetails:\n%s\nThank you.",
		b.UserName, pastTense(kind), bookingDetails(kind, b, bookingID))
}

// AdminBookingBody renders the plain-text copy sent to each administrator.
func AdminBookingBody(kind string, b *domain.Booking, bookingID, dashboardURL string) string {
	body := fmt.Sprintf("A booking has been %s.\n\nDetails:\n%s",
		pastTense(kind), bookingDetails(kind, b, bookingID))

	if kind != domain.EventCancel && dashboardURL != "" {
		body += "\nGo to Admin Dashboard: " + dashboardURL
	}
	return body
}

// bookingDetails lists the booking fields; cancellations omit duration,
// equipment and payment, matching the notification the booking owner expects
// for a booking that no longer exists.
func bookingDetails(kind string, b *domain.Booking, bookingID string) string {
	var sb strings.Builder

	id := bookingID
	if id == "" {
		id = "N/A"
	}
	fmt.Fprintf(&sb, "Booking ID: %s\n", id)
	fmt.Fprintf(&sb, "User Name: %s\n", b.UserName)
	fmt.Fprintf(&sb, "Date: %s\n", b.Date)
	fmt.Fprintf(&sb, "Time: %s\n", b.Time)

	if kind == domain.EventCancel {
		return sb.String()
	}

	fmt.Fprintf(&sb, "Duration: %g hours\n", b.Duration)
	writeEquipmentByCategory(&sb, b.Equipment)
	if b.PaymentStatus != "" {
		fmt.Fprintf(&sb, "Payment Status: %s\n", b.PaymentStatus)
	}
	return sb.String()
}

func writeEquipmentByCategory(sb *strings.Builder, items []domain.Equipment) {
	if len(items) == 0 {
		return
	}

	labels := []struct {
		category string
		label    string
	}{
		{domain.CategoryPlayer, "Players"},
		{domain.CategoryMixer, "Mixers"},
		{domain.CategoryExtra, "Extras"},
	}

	for _, l := range labels {
		var names []string
		for _, item := range items {
			if item.Category != l.category {
				continue
			}
			if item.Name != "" {
				names = append(names, item.Name)
			} else if item.ID != "" {
				names = append(names, item.ID)
			} else {
				names = append(names, "Unknown Equipment")
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(sb, "%s: %s\n", l.label, strings.Join(names, ", "))
		}
	}
}

var accountSetupTmpl = template.Must(template.New("accountSetup").Parse(`<p>Hello {{.Name}},</p>
<p>Polar has created an account for you to use the Showroom Booking App.</p>
<p>To set up your password and log in, please click on the link below:</p>
<p><a href="{{.Link}}">Set Your Password</a></p>
<p>This link is valid for a single use and will expire after a short period.</p>
{{if .AppURL}}<p>You can access the app here: <a href="{{.AppURL}}">{{.AppURL}}</a></p>
{{end}}<p>Thank you,</p>
<p>The Polar Team</p>`))

// AccountSetupBody renders the HTML mail carrying the password-reset link for
// an admin-created account.
func AccountSetupBody(displayName, email, resetLink, appURL string) (string, error) {
	name := displayName
	if name == "" {
		name = email
	}

	var buf bytes.Buffer
	err := accountSetupTmpl.Execute(&buf, struct {
		Name   string
		Link   string
		AppURL string
	}{Name: name, Link: resetLink, AppURL: appURL})
	if err != nil {
		return "", fmt.Errorf("render account setup mail: %w", err)
	}
	return buf.String(), nil
}
