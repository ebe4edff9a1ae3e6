package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikansh/ikansh-dev/internal/logger"
	"github.com/ikansh/ikansh-dev/internal/mailer"
	"github.com/ikansh/ikansh-dev/internal/persona"
	"github.com/ikansh/ikansh-dev/internal/store"
)

type fakeNotifier struct {
	enabled bool
	err     error
	sent    []mailer.Notification
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }
func (f *fakeNotifier) Send(_ context.Context, n mailer.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func valid() Submission {
	return Submission{
		Name:     "  Ada Lovelace ",
		Email:    "ada@example.com",
		Message:  "Fellow seeker here.",
		Persona:  persona.Genesis,
		HashedIP: "abc123",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
		field  string
	}{
		{"empty name", func(s *Submission) { s.Name = "   " }, "name"},
		{"long name", func(s *Submission) { s.Name = strings.Repeat("a", MaxNameLen+1) }, "name"},
		{"empty email", func(s *Submission) { s.Email = "" }, "email"},
		{"bad email", func(s *Submission) { s.Email = "not-an-email" }, "email"},
		{"display name email", func(s *Submission) { s.Email = "Ada <ada@example.com>" }, "email"},
		{"empty message", func(s *Submission) { s.Message = "\n" }, "message"},
		{"long message", func(s *Submission) { s.Message = strings.Repeat("x", MaxMessageLen+1) }, "message"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := Validate(&s)
			require.ErrorIs(t, err, ErrInvalid)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tc.field)
		})
	}

	s := valid()
	require.NoError(t, Validate(&s))
	assert.Equal(t, "Ada Lovelace", s.Name)
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	n := &fakeNotifier{enabled: true}
	svc := NewService(st, n, NewLimiter(3), logger.Discard())
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }

	msg, err := svc.Submit(ctx, valid())
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.True(t, msg.Notified)

	require.Len(t, n.sent, 1)
	assert.Equal(t, "Ada Lovelace", n.sent[0].Name)
	assert.Equal(t, "genesis", n.sent[0].Persona)

	msgs, err := st.Messages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.ID, msgs[0].ID)
	assert.True(t, msgs[0].Notified)
	assert.Equal(t, "abc123", msgs[0].HashedIP)
}

func TestSubmit_NotifyFailureKeepsMessage(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	svc := NewService(st, &fakeNotifier{enabled: true, err: errors.New("smtp down")}, nil, logger.Discard())

	msg, err := svc.Submit(ctx, valid())
	require.NoError(t, err)
	assert.False(t, msg.Notified)

	msgs, err := st.Messages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].Notified)
}

func TestSubmit_DisabledNotifierIsSkipped(t *testing.T) {
	n := &fakeNotifier{enabled: false}
	svc := NewService(newStore(t), n, nil, logger.Discard())

	_, err := svc.Submit(context.Background(), valid())
	require.NoError(t, err)
	assert.Empty(t, n.sent)
}

func TestSubmit_RateLimited(t *testing.T) {
	svc := NewService(newStore(t), nil, NewLimiter(2), logger.Discard())
	ctx := context.Background()

	_, err := svc.Submit(ctx, valid())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, valid())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, valid())
	assert.ErrorIs(t, err, ErrRateLimited)

	other := valid()
	other.HashedIP = "def456"
	_, err = svc.Submit(ctx, other)
	assert.NoError(t, err)
}

func TestSubmit_InvalidIsNotRateCounted(t *testing.T) {
	svc := NewService(newStore(t), nil, NewLimiter(1), logger.Discard())
	ctx := context.Background()

	bad := valid()
	bad.Email = "nope"
	_, err := svc.Submit(ctx, bad)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Submit(ctx, valid())
	assert.NoError(t, err)
}

func TestLimiter_Prune(t *testing.T) {
	l := NewLimiter(1)
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	now = now.Add(10 * time.Minute)
	assert.True(t, l.Allow("b"))

	assert.Equal(t, 1, l.Prune(5*time.Minute))
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(0)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("a"))
	}
}
