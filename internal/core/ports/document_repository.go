package ports

import (
	"context"

	"github.com/autohaus/dealership/internal/core/domain"
)

// DocumentRepository persists documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	FindByTrackingCode(ctx context.Context, code string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id string) error
}
