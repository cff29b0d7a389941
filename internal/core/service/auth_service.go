package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/auth"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

const (
	minPasswordLen = 6
	// bcrypt ignores input past 72 bytes; longer passwords are rejected.
	maxPasswordLen = 72
)

// AuthService implements signup, login and account administration.
type AuthService struct {
	repo     ports.AccountRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenService
	tokenTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(repo ports.AccountRepository, hasher *auth.Hasher, tokens *auth.TokenService, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = auth.DefaultTTL
	}
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
		now:      time.Now,
	}
}

func (s *AuthService) Signup(ctx context.Context, role domain.Role, in ports.SignupInput) (*domain.Account, error) {
	if !role.Valid() {
		return nil, domain.Validation("unknown role %q", role)
	}
	email := domain.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if err := validateSignup(email, name, in.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("role", string(role)).Str("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, role domain.Role, email, password string) (*ports.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Validation("email and password are required")
	}

	account, err := s.repo.FindByEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(auth.Subject{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	}, role, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &ports.Session{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

func (s *AuthService) Me(ctx context.Context, who *domain.Identity) (*domain.Account, error) {
	if who == nil {
		return nil, domain.ErrUnauthenticated
	}
	account, err := s.repo.FindByID(ctx, who.Role, who.ID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, who *domain.Identity, current, next string) error {
	if who == nil {
		return domain.ErrUnauthenticated
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	account, err := s.repo.FindByID(ctx, who.Role, who.ID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(current, account.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, who.Role, who.ID, hash); err != nil {
		return err
	}

	s.log.Info().Str("role", string(who.Role)).Str("account_id", who.ID).Msg("password changed")
	return nil
}

func (s *AuthService) ListAccounts(ctx context.Context, role domain.Role) ([]*domain.Account, error) {
	return s.repo.List(ctx, role)
}

func (s *AuthService) DeleteAccount(ctx context.Context, role domain.Role, id string) error {
	if err := s.repo.Delete(ctx, role, id); err != nil {
		return err
	}
	s.log.Info().Str("role", string(role)).Str("account_id", id).Msg("account deleted")
	return nil
}

// EnsureAdmin creates the bootstrap admin unless an admin with that email
// already exists. It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, in ports.SignupInput) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, domain.RoleAdmin, domain.NormalizeEmail(in.Email))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return false, err
	}
	if _, err := s.Signup(ctx, domain.RoleAdmin, in); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func validateSignup(email, name, password string) error {
	if email == "" {
		return domain.Validation("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Validation("email must be a valid email")
	}
	if name == "" {
		return domain.Validation("name is required")
	}
	return validatePassword(password)
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return domain.Validation("password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return domain.Validation("password must be at most %d bytes", maxPasswordLen)
	}
	return nil
}
