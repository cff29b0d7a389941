package ports

import (
	"context"

	"github.com/autohaus/dealership/internal/core/domain"
)

// CarRepository persists inventory items.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	// List returns pinned cars first, then newest first.
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	SetStatus(ctx context.Context, id string, status domain.CarStatus) error
	Delete(ctx context.Context, id string) error
	CountByBrand(ctx context.Context, brandID string) (int64, error)
}

// BrandRepository persists brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id string) error
}
