package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autohaus/dealership/internal/core/domain"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	client.ID = newID()
	return insertOne(ctx, r.col, client, domain.ErrAgreementExists)
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	return findOne[domain.Client](ctx, r.col, byID(id), domain.ErrClientNotFound)
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	return findMany[domain.Client](ctx, r.col, bson.M{}, options.Find().SetSort(newestFirst))
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	return replaceByID(ctx, r.col, client.ID, client, domain.ErrClientNotFound, domain.ErrAgreementExists)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrClientNotFound)
}

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.ID = newID()
	return insertOne(ctx, r.col, order, domain.Conflict("order already exists"))
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return findOne[domain.Order](ctx, r.col, byID(id), domain.ErrOrderNotFound)
}

func (r *OrderRepository) List(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	q := bson.M{}
	if status != "" {
		q["status"] = status
	}
	return findMany[domain.Order](ctx, r.col, q, options.Find().SetSort(newestFirst))
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	return replaceByID(ctx, r.col, order.ID, order, domain.ErrOrderNotFound, nil)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrOrderNotFound)
}
