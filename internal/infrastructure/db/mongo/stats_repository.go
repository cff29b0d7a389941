package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autohaus/dealership/internal/core/domain"
)

// StatsRepository runs the dashboard aggregates. Counting and joins happen
// in Mongo; amount coercion and ranking are left to the caller because
// stored amounts may be strings.
type StatsRepository struct {
	cars      *mongo.Collection
	brands    *mongo.Collection
	clients   *mongo.Collection
	orders    *mongo.Collection
	documents *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{
		cars:      db.Collection(collectionCars),
		brands:    db.Collection(collectionBrands),
		clients:   db.Collection(collectionClients),
		orders:    db.Collection(collectionOrders),
		documents: db.Collection(collectionDocuments),
	}
}

// countFacet builds a $facet stage with one total bucket plus one bucket per
// status value, followed by a projection that flattens each bucket to an int.
func countFacet(buckets map[string]string) mongo.Pipeline {
	facet := bson.D{{Key: "total", Value: bson.A{bson.D{{Key: "$count", Value: "n"}}}}}
	project := bson.D{{Key: "total", Value: firstOrZero("$total.n")}}
	for field, status := range buckets {
		facet = append(facet, bson.E{Key: field, Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: status}}}},
			bson.D{{Key: "$count", Value: "n"}},
		}})
		project = append(project, bson.E{Key: field, Value: firstOrZero("$" + field + ".n")})
	}
	return mongo.Pipeline{
		{{Key: "$facet", Value: facet}},
		{{Key: "$project", Value: project}},
	}
}

func firstOrZero(path string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$arrayElemAt", Value: bson.A{path, 0}}},
		0,
	}}}
}

func firstOrEmpty(path string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$arrayElemAt", Value: bson.A{path, 0}}},
		"",
	}}}
}

func (r *StatsRepository) InventoryCounts(ctx context.Context) (domain.InventoryCounts, error) {
	rows, err := aggregate[domain.InventoryCounts](ctx, r.cars, countFacet(map[string]string{
		"available": string(domain.CarAvailable),
		"sold":      string(domain.CarSold),
	}))
	if err != nil || len(rows) == 0 {
		return domain.InventoryCounts{}, err
	}
	return rows[0], nil
}

func (r *StatsRepository) OrderCounts(ctx context.Context) (domain.OrderCounts, error) {
	rows, err := aggregate[domain.OrderCounts](ctx, r.orders, countFacet(map[string]string{
		"pending":   string(domain.OrderPending),
		"delivered": string(domain.OrderDelivered),
	}))
	if err != nil || len(rows) == 0 {
		return domain.OrderCounts{}, err
	}
	return rows[0], nil
}

func (r *StatsRepository) CountClients(ctx context.Context) (int64, error) {
	return count(ctx, r.clients, bson.M{})
}

func (r *StatsRepository) CountBrands(ctx context.Context) (int64, error) {
	return count(ctx, r.brands, bson.M{})
}

func (r *StatsRepository) CountDocuments(ctx context.Context) (int64, error) {
	return count(ctx, r.documents, bson.M{})
}

func (r *StatsRepository) RecentDocuments(ctx context.Context, limit int) ([]domain.DocumentSummary, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	docs, err := findMany[domain.Document](ctx, r.documents, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DocumentSummary, len(docs))
	for i, d := range docs {
		out[i] = domain.DocumentSummary{ID: d.ID, Type: d.Type, Status: d.Status, Title: d.Title, CreatedAt: d.CreatedAt}
	}
	return out, nil
}

// RecentOrders left-joins the newest orders to their client and car.
func (r *StatsRepository) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	return aggregate[domain.RecentOrder](ctx, r.orders, recentOrdersPipeline(limit))
}

// recentOrdersPipeline keeps orders whose client or car is gone; the joined
// names come back empty.
func recentOrdersPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: newestFirst}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionClients},
			{Key: "localField", Value: "client_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionCars},
			{Key: "localField", Value: "car_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "car"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "status", Value: 1},
			{Key: "amount", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "client_name", Value: firstOrEmpty("$client.name")},
			{Key: "car_brand", Value: firstOrEmpty("$car.brand")},
			{Key: "car_model", Value: firstOrEmpty("$car.model")},
		}}},
	}
}

var saleProjection = bson.D{
	{Key: "car_id", Value: 1},
	{Key: "amount", Value: 1},
	{Key: "created_at", Value: 1},
}

func deliveredFilter(since time.Time) bson.M {
	q := bson.M{"status": domain.OrderDelivered}
	if !since.IsZero() {
		q["created_at"] = bson.M{"$gte": since}
	}
	return q
}

func (r *StatsRepository) DeliveredSales(ctx context.Context, since time.Time) ([]domain.OrderSale, error) {
	opts := options.Find().SetProjection(saleProjection)
	rows, err := findMany[domain.OrderSale](ctx, r.orders, deliveredFilter(since), opts)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OrderSale, len(rows))
	for i, s := range rows {
		out[i] = *s
	}
	return out, nil
}

func (r *StatsRepository) CarsByIDs(ctx context.Context, ids []string) (map[string]*domain.Car, error) {
	out := make(map[string]*domain.Car, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cars, err := findMany[domain.Car](ctx, r.cars, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, car := range cars {
		out[car.ID] = car
	}
	return out, nil
}
