package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/autohaus/dealership/internal/core/auth"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

func newAuthService(repo *memAccounts) (*AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	return NewAuthService(repo, auth.NewHasher(bcrypt.MinCost), tokens, 0, zerolog.Nop()), tokens
}

func TestSignupAndLogin(t *testing.T) {
	repo := newMemAccounts()
	svc, tokens := newAuthService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.RoleUser, ports.SignupInput{Email: " Buyer@Example.com ", Name: "Buyer", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", created.Email)
	assert.NotEqual(t, "secret123", created.PasswordHash)

	session, err := svc.Login(ctx, domain.RoleUser, "BUYER@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.Account.ID)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultTTL), session.ExpiresAt, time.Minute)

	claims, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestSignup_DuplicateEmailIsConflict(t *testing.T) {
	svc, _ := newAuthService(newMemAccounts())
	ctx := context.Background()
	in := ports.SignupInput{Email: "a@b.io", Name: "A", Password: "secret123"}

	_, err := svc.Signup(ctx, domain.RoleUser, in)
	require.NoError(t, err)

	in.Email = "A@B.io"
	_, err = svc.Signup(ctx, domain.RoleUser, in)
	assert.ErrorIs(t, err, domain.ErrAccountExists)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	// partitions are independent
	_, err = svc.Signup(ctx, domain.RoleAdmin, in)
	assert.NoError(t, err)
}

func TestSignup_Validation(t *testing.T) {
	svc, _ := newAuthService(newMemAccounts())
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}

	cases := map[string]ports.SignupInput{
		"missing email":  {Name: "A", Password: "secret123"},
		"bad email":      {Email: "nope", Name: "A", Password: "secret123"},
		"missing name":   {Email: "a@b.io", Password: "secret123"},
		"short password": {Email: "a@b.io", Name: "A", Password: "123"},
		"long password":  {Email: "a@b.io", Name: "A", Password: string(long)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), domain.RoleUser, in)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newMemAccounts()
	svc, _ := newAuthService(repo)
	ctx := context.Background()
	_, err := svc.Signup(ctx, domain.RoleAdmin, ports.SignupInput{Email: "boss@dealer.test", Name: "Boss", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.RoleAdmin, "boss@dealer.test", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.RoleAdmin, "ghost@dealer.test", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// an admin cannot log in through the user partition
	_, err = svc.Login(ctx, domain.RoleUser, "boss@dealer.test", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.RoleAdmin, "", "")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestChangePassword(t *testing.T) {
	repo := newMemAccounts()
	svc, _ := newAuthService(repo)
	ctx := context.Background()
	created, err := svc.Signup(ctx, domain.RoleUser, ports.SignupInput{Email: "a@b.io", Name: "A", Password: "secret123"})
	require.NoError(t, err)
	who := created.Identity()

	err = svc.ChangePassword(ctx, who, "not-it", "newsecret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, who, "secret123", "newsecret"))

	_, err = svc.Login(ctx, domain.RoleUser, "a@b.io", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.RoleUser, "a@b.io", "newsecret")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, nil, "a", "b"), domain.ErrUnauthenticated)
}

func TestMeAndDelete(t *testing.T) {
	repo := newMemAccounts()
	svc, _ := newAuthService(repo)
	ctx := context.Background()
	created, err := svc.Signup(ctx, domain.RoleAdmin, ports.SignupInput{Email: "a@b.io", Name: "A", Password: "secret123"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, created.Identity())
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.ID)

	list, err := svc.ListAccounts(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteAccount(ctx, domain.RoleAdmin, created.ID))
	_, err = svc.Me(ctx, created.Identity())
	assert.True(t, errors.Is(err, domain.ErrAccountNotFound))
}

func TestEnsureAdmin(t *testing.T) {
	repo := newMemAccounts()
	svc, _ := newAuthService(repo)
	ctx := context.Background()
	in := ports.SignupInput{Email: "root@dealer.test", Name: "Root", Password: "bootstrap-pw"}

	created, err := svc.EnsureAdmin(ctx, in)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, in)
	require.NoError(t, err)
	assert.False(t, created)

	admins, err := svc.ListAccounts(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
