// Package contact handles the contact form: validation, rate limiting,
// storage and email notification.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ikansh/ikansh-dev/internal/mailer"
	"github.com/ikansh/ikansh-dev/internal/persona"
	"github.com/ikansh/ikansh-dev/internal/store"
)

var (
	ErrInvalid     = errors.New("invalid submission")
	ErrRateLimited = errors.New("too many messages, try again later")
)

const (
	MaxNameLen    = 100
	MaxEmailLen   = 254
	MaxMessageLen = 5000
)

// Submission is what the form posts.
type Submission struct {
	Name     string
	Email    string
	Message  string
	Persona  persona.Persona
	HashedIP string
}

// ValidationError lists the offending fields. It matches ErrInvalid.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

type Repository interface {
	SaveMessage(ctx context.Context, m store.Message) error
	MarkNotified(ctx context.Context, id string) error
}

type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, n mailer.Notification) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	limiter  *Limiter
	log      *slog.Logger
	now      func() time.Time
}

// NewService wires the form. notifier and limiter may be nil.
func NewService(repo Repository, notifier Notifier, limiter *Limiter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, notifier: notifier, limiter: limiter, log: log, now: time.Now}
}

// Validate trims s in place and checks every field.
func Validate(s *Submission) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)

	fields := map[string]string{}
	switch n := utf8.RuneCountInString(s.Name); {
	case n == 0:
		fields["name"] = "required"
	case n > MaxNameLen:
		fields["name"] = fmt.Sprintf("at most %d characters", MaxNameLen)
	}

	switch {
	case s.Email == "":
		fields["email"] = "required"
	case len(s.Email) > MaxEmailLen:
		fields["email"] = fmt.Sprintf("at most %d characters", MaxEmailLen)
	default:
		addr, err := mail.ParseAddress(s.Email)
		if err != nil || addr.Address != s.Email {
			fields["email"] = "not a valid address"
		}
	}

	switch n := utf8.RuneCountInString(s.Message); {
	case n == 0:
		fields["message"] = "required"
	case n > MaxMessageLen:
		fields["message"] = fmt.Sprintf("at most %d characters", MaxMessageLen)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates, rate limits and stores the submission, then forwards it by
// email when a notifier is configured. A failed notification is logged; the
// message stays stored and unnotified.
func (s *Service) Submit(ctx context.Context, sub Submission) (store.Message, error) {
	if err := Validate(&sub); err != nil {
		return store.Message{}, err
	}
	if s.limiter != nil && !s.limiter.Allow(sub.HashedIP) {
		s.log.Warn("contact.rate_limited", "hashed_ip", sub.HashedIP)
		return store.Message{}, ErrRateLimited
	}

	msg := store.Message{
		ID:        uuid.New().String(),
		Name:      sub.Name,
		Email:     sub.Email,
		Body:      sub.Message,
		Persona:   string(sub.Persona),
		HashedIP:  sub.HashedIP,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return store.Message{}, err
	}
	s.log.Info("contact.received", "id", msg.ID, "persona", msg.Persona)

	if s.notifier == nil || !s.notifier.Enabled() {
		return msg, nil
	}
	err := s.notifier.Send(ctx, mailer.Notification{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Body,
		Persona: msg.Persona,
		SentAt:  msg.CreatedAt,
	})
	if err != nil {
		s.log.Error("contact.notify_failed", "id", msg.ID, "error", err)
		return msg, nil
	}
	if err := s.repo.MarkNotified(ctx, msg.ID); err != nil {
		s.log.Error("contact.mark_notified_failed", "id", msg.ID, "error", err)
		return msg, nil
	}
	msg.Notified = true
	return msg, nil
}
