package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohaus/dealership/internal/core/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

var alice = Subject{ID: "u1", Email: "alice@example.com", Name: "Alice"}

func TestTokenService_IssueVerify(t *testing.T) {
	clock := newClock()
	svc := NewTokenService("secret", WithClock(clock.Now))

	token, exp, err := svc.Issue(alice, domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour), exp)
	assert.Equal(t, 2, strings.Count(token, "."))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, clock.Now().Unix(), claims.IssuedAt.Unix())
}

func TestTokenService_Expiry(t *testing.T) {
	clock := newClock()
	svc := NewTokenService("secret", WithClock(clock.Now))

	token, _, err := svc.Issue(alice, domain.RoleUser, time.Minute)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_DefaultTTLIsSevenDays(t *testing.T) {
	clock := newClock()
	svc := NewTokenService("secret", WithClock(clock.Now))

	_, exp, err := svc.Issue(alice, domain.RoleUser, 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, exp.Sub(clock.Now()))
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("secret-a").Issue(alice, domain.RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService("secret")
	token, _, err := svc.Issue(alice, domain.RoleUser, time.Hour)
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	for i := range segments {
		mid := len(segments[i]) / 2
		tampered := make([]string, 3)
		copy(tampered, segments)
		b := []byte(tampered[i])
		if b[mid] == 'A' {
			b[mid] = 'B'
		} else {
			b[mid] = 'A'
		}
		tampered[i] = string(b)

		_, err := svc.Verify(strings.Join(tampered, "."))
		assert.ErrorIs(t, err, ErrTokenInvalid, "segment %d altered", i)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret")

	for _, raw := range []string{"", "abc", "a.b", "a.b.c", "..."} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, "input %q", raw)
	}
}

func TestTokenService_RejectsUnknownRole(t *testing.T) {
	_, _, err := NewTokenService("secret").Issue(alice, domain.Role("root"), time.Hour)
	assert.Error(t, err)
}
