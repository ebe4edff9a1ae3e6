// Package mailer sends contact form notifications over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("SMTP credentials not configured")

type Config struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Notification is one contact form submission to forward.
type Notification struct {
	Name    string
	Email   string
	Message string
	Persona string
	SentAt  time.Time
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Mailer struct {
	cfg  Config
	send sendFunc
}

func New(cfg Config) *Mailer {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

func (m *Mailer) Enabled() bool { return m.cfg.User != "" && m.cfg.Pass != "" }

// Send delivers n. It returns ErrNotConfigured without credentials. smtp.SendMail
// has no context support, so ctx is only checked before dialing.
func (m *Mailer) Send(ctx context.Context, n Notification) error {
	if !m.Enabled() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, m.compose(n)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func (m *Mailer) compose(n Notification) []byte {
	subject := "Portfolio Contact: " + oneLine(n.Name)

	var body strings.Builder
	body.WriteString("New contact form submission from your portfolio:\n\n")
	fmt.Fprintf(&body, "Name: %s\n", n.Name)
	fmt.Fprintf(&body, "Email: %s\n", n.Email)
	if n.Persona != "" {
		fmt.Fprintf(&body, "Persona: %s\n", n.Persona)
	}
	if !n.SentAt.IsZero() {
		fmt.Fprintf(&body, "Received: %s\n", n.SentAt.UTC().Format(time.RFC1123))
	}
	fmt.Fprintf(&body, "Message:\n%s\n\n---\nSent from your portfolio contact form\n", n.Message)

	return []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + oneLine(n.Email) + "\r\n" +
		"\r\n" +
		body.String() + "\r\n")
}

// oneLine strips line breaks so user input cannot add headers.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
