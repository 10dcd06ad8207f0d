package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/polarstudio/showroom-booking-backend/config"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Client sends mail through an SMTP relay, optionally upgrading the
// connection with STARTTLS (port 587 style).
type Client struct {
	host        string
	port        string
	username    string
	password    string
	fromAddress string
	fromName    string
	useTLS      bool
}

func NewClient(cfg config.SMTPConfig) *Client {
	return &Client{
		host:        cfg.Host,
		port:        cfg.Port,
		username:    cfg.Username,
		password:    cfg.Password,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		useTLS:      cfg.UseTLS,
	}
}

func (c *Client) Send(msg Message) error {
	from := c.fromAddress
	if c.fromName != "" {
		from = fmt.Sprintf("%s <%s>", c.fromName, c.fromAddress)
	}

	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}

	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: %s; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		from, msg.To, msg.Subject, contentType, msg.Body,
	))

	addr := fmt.Sprintf("%s:%s", c.host, c.port)

	var auth smtp.Auth
	if c.username != "" && c.password != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	if c.useTLS {
		return c.sendMailTLS(addr, auth, []string{msg.To}, raw)
	}
	return smtp.SendMail(addr, auth, c.fromAddress, []string{msg.To}, raw)
}

// sendMailTLS sends email with STARTTLS support
func (c *Client) sendMailTLS(addr string, auth smtp.Auth, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: c.host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(c.fromAddress); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
