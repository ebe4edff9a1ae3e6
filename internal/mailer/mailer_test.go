package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	addr string
	from string
	to   []string
	msg  string
}

func fakeMailer(cfg Config, err error) (*Mailer, *captured) {
	c := &captured{}
	m := New(cfg)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		c.addr, c.from, c.to, c.msg = addr, from, to, string(msg)
		return err
	}
	return m, c
}

func TestSend_NotConfigured(t *testing.T) {
	m, c := fakeMailer(Config{Host: "smtp.example.com", Port: "587"}, nil)
	assert.False(t, m.Enabled())
	assert.ErrorIs(t, m.Send(context.Background(), Notification{Name: "x"}), ErrNotConfigured)
	assert.Empty(t, c.addr)
}

func TestSend_ComposesMessage(t *testing.T) {
	m, c := fakeMailer(Config{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "pw"}, nil)

	err := m.Send(context.Background(), Notification{
		Name:    "Ada\r\nBcc: evil@example.com",
		Email:   "ada@example.com",
		Message: "Let's build something.",
		Persona: "genesis",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", c.addr)
	assert.Equal(t, "me@example.com", c.from)
	assert.Equal(t, []string{"me@example.com"}, c.to)
	assert.Contains(t, c.msg, "Subject: Portfolio Contact: Ada  Bcc: evil@example.com\r\n")
	assert.Contains(t, c.msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, c.msg, "Persona: genesis\n")
	assert.Contains(t, c.msg, "Message:\nLet's build something.\n")

	headers := strings.SplitN(c.msg, "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSend_WrapsTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	m, _ := fakeMailer(Config{Host: "h", Port: "25", User: "u", Pass: "p", To: "to@example.com"}, boom)
	err := m.Send(context.Background(), Notification{Name: "n"})
	assert.ErrorIs(t, err, boom)
}

func TestSend_CancelledContext(t *testing.T) {
	m, c := fakeMailer(Config{Host: "h", Port: "25", User: "u", Pass: "p"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Notification{}), context.Canceled)
	assert.Empty(t, c.addr)
}
