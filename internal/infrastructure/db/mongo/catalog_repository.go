package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autohaus/dealership/internal/core/domain"
)

type CarRepository struct {
	col *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{col: db.Collection(collectionCars)}
}

// Create assigns the car a new id and inserts it.
func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	car.ID = newID()
	return insertOne(ctx, r.col, car, domain.Conflict("car already exists"))
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	return findOne[domain.Car](ctx, r.col, byID(id), domain.ErrCarNotFound)
}

func (r *CarRepository) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	q := bson.M{}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.BrandID != "" {
		q["brand_id"] = filter.BrandID
	}
	opts := options.Find().SetSort(bson.D{{Key: "pinned", Value: -1}, {Key: "created_at", Value: -1}})
	return findMany[domain.Car](ctx, r.col, q, opts)
}

func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	return replaceByID(ctx, r.col, car.ID, car, domain.ErrCarNotFound, nil)
}

func (r *CarRepository) SetStatus(ctx context.Context, id string, status domain.CarStatus) error {
	return setFields(ctx, r.col, id, bson.D{{Key: "status", Value: status}}, domain.ErrCarNotFound)
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrCarNotFound)
}

func (r *CarRepository) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	return count(ctx, r.col, bson.M{"brand_id": brandID})
}

// BrandRepository relies on a case-insensitive unique index on name.
type BrandRepository struct {
	col *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{col: db.Collection(collectionBrands)}
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	brand.ID = newID()
	return insertOne(ctx, r.col, brand, domain.ErrBrandExists)
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*domain.Brand, error) {
	return findOne[domain.Brand](ctx, r.col, byID(id), domain.ErrBrandNotFound)
}

func (r *BrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetCollation(caseInsensitive)
	return findMany[domain.Brand](ctx, r.col, bson.M{}, opts)
}

func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	return replaceByID(ctx, r.col, brand.ID, brand, domain.ErrBrandNotFound, domain.ErrBrandExists)
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrBrandNotFound)
}
