package ports

import (
	"context"
	"time"

	"github.com/autohaus/dealership/internal/core/domain"
)

// StatsRepository runs the read-only aggregate queries behind the dashboard.
// Every method is independent of the others and safe to call concurrently.
type StatsRepository interface {
	InventoryCounts(ctx context.Context) (domain.InventoryCounts, error)
	OrderCounts(ctx context.Context) (domain.OrderCounts, error)
	CountClients(ctx context.Context) (int64, error)
	CountBrands(ctx context.Context) (int64, error)
	CountDocuments(ctx context.Context) (int64, error)
	RecentDocuments(ctx context.Context, limit int) ([]domain.DocumentSummary, error)
	// RecentOrders returns the newest orders left-joined to client and car.
	RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error)
	// DeliveredSales returns delivered orders created at or after since.
	// A zero since returns all delivered orders.
	DeliveredSales(ctx context.Context, since time.Time) ([]domain.OrderSale, error)
	CarsByIDs(ctx context.Context, ids []string) (map[string]*domain.Car, error)
}
