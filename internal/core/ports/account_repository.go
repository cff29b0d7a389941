package ports

import (
	"context"

	"github.com/autohaus/dealership/internal/core/domain"
)

// AccountRepository persists accounts. Each role is a separate partition, so
// the same email may exist once as a user and once as an admin.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// FindByEmail matches case-insensitively and returns ErrAccountNotFound
	// when no account exists.
	FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error)
	FindByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, role domain.Role, id, passwordHash string) error
	Delete(ctx context.Context, role domain.Role, id string) error
	List(ctx context.Context, role domain.Role) ([]*domain.Account, error)
}
