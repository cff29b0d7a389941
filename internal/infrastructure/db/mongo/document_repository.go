package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autohaus/dealership/internal/core/domain"
)

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection(collectionDocuments)}
}

// Create reports ErrTrackingExists when the tracking code is already taken.
func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = newID()
	return insertOne(ctx, r.col, doc, domain.ErrTrackingExists)
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	return findOne[domain.Document](ctx, r.col, byID(id), domain.ErrDocumentNotFound)
}

func (r *DocumentRepository) FindByTrackingCode(ctx context.Context, code string) (*domain.Document, error) {
	return findOne[domain.Document](ctx, r.col, bson.M{"tracking_code": code}, domain.ErrDocumentNotFound)
}

func (r *DocumentRepository) List(ctx context.Context) ([]*domain.Document, error) {
	return findMany[domain.Document](ctx, r.col, bson.M{}, options.Find().SetSort(newestFirst))
}

func (r *DocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	return replaceByID(ctx, r.col, doc.ID, doc, domain.ErrDocumentNotFound, domain.ErrTrackingExists)
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrDocumentNotFound)
}
