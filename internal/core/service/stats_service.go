package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

const (
	recentOrdersLimit    = 10
	recentDocumentsLimit = 5
	topSellersLimit      = 5
	monthlyWindow        = 30 * 24 * time.Hour
)

// StatsService builds the admin dashboard snapshot.
type StatsService struct {
	repo ports.StatsRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewStatsService(repo ports.StatsRepository, log zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, log: log, now: time.Now}
}

// ComputeDashboard runs the independent aggregate queries concurrently and
// reduces them into a Snapshot. Any failed query fails the whole call.
func (s *StatsService) ComputeDashboard(ctx context.Context) (*domain.Snapshot, error) {
	var (
		inventory domain.InventoryCounts
		orders    domain.OrderCounts
		clients   int64
		brands    int64
		documents int64
		recent    []domain.RecentOrder
		recentDoc []domain.DocumentSummary
		delivered []domain.OrderSale
		monthly   []domain.OrderSale
	)

	now := s.now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inventory, err = s.repo.InventoryCounts(gctx)
		return wrapQuery("inventory counts", err)
	})
	g.Go(func() (err error) {
		orders, err = s.repo.OrderCounts(gctx)
		return wrapQuery("order counts", err)
	})
	g.Go(func() (err error) {
		clients, err = s.repo.CountClients(gctx)
		return wrapQuery("client count", err)
	})
	g.Go(func() (err error) {
		brands, err = s.repo.CountBrands(gctx)
		return wrapQuery("brand count", err)
	})
	g.Go(func() (err error) {
		documents, err = s.repo.CountDocuments(gctx)
		return wrapQuery("document count", err)
	})
	g.Go(func() (err error) {
		recentDoc, err = s.repo.RecentDocuments(gctx, recentDocumentsLimit)
		return wrapQuery("recent documents", err)
	})
	g.Go(func() (err error) {
		recent, err = s.repo.RecentOrders(gctx, recentOrdersLimit)
		return wrapQuery("recent orders", err)
	})
	g.Go(func() (err error) {
		delivered, err = s.repo.DeliveredSales(gctx, time.Time{})
		return wrapQuery("delivered sales", err)
	})
	g.Go(func() (err error) {
		monthly, err = s.repo.DeliveredSales(gctx, now.Add(-monthlyWindow))
		return wrapQuery("monthly sales", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalRevenue := sumAmounts(delivered)
	monthlyRevenue := sumAmounts(monthly)

	top, err := s.topSellers(ctx, delivered)
	if err != nil {
		return nil, err
	}

	if recentDoc == nil {
		recentDoc = []domain.DocumentSummary{}
	}

	snapshot := &domain.Snapshot{
		Stats: domain.Stats{
			TotalCars:       inventory.Total,
			AvailableCars:   inventory.Available,
			SoldCars:        inventory.Sold,
			TotalUsers:      clients,
			TotalOrders:     orders.Total,
			PendingOrders:   orders.Pending,
			CompletedOrders: orders.Delivered,
			TotalRevenue:    totalRevenue,
			MonthlyRevenue:  monthlyRevenue,
			Categories:      brands,
			ActiveTracking:  documents,
		},
		RecentActivities: ActivityFeed(recent, now),
		TopSellingCars:   top,
		RecentDocuments:  recentDoc,
	}

	s.log.Debug().
		Int64("orders", orders.Total).
		Float64("revenue", totalRevenue).
		Int("top_sellers", len(top)).
		Msg("dashboard computed")
	return snapshot, nil
}

func wrapQuery(name string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard %s: %w", name, err)
	}
	return nil
}

// sumAmounts adds the coerced amounts of sales.
func sumAmounts(sales []domain.OrderSale) float64 {
	var total float64
	for _, sale := range sales {
		total += domain.ParseAmount(sale.Amount)
	}
	return total
}

type carTally struct {
	id      string
	sales   int
	revenue float64
}

// rankSellers groups delivered sales by car and returns at most limit
// tallies ordered by sale count, then revenue, then car id.
func rankSellers(sales []domain.OrderSale, limit int) []carTally {
	byCar := make(map[string]*carTally)
	for _, sale := range sales {
		if sale.CarID == "" {
			continue
		}
		t, ok := byCar[sale.CarID]
		if !ok {
			t = &carTally{id: sale.CarID}
			byCar[sale.CarID] = t
		}
		t.sales++
		t.revenue += domain.ParseAmount(sale.Amount)
	}

	ranked := make([]carTally, 0, len(byCar))
	for _, t := range byCar {
		ranked = append(ranked, *t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.sales != b.sales {
			return a.sales > b.sales
		}
		if a.revenue != b.revenue {
			return a.revenue > b.revenue
		}
		return a.id < b.id
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *StatsService) topSellers(ctx context.Context, sales []domain.OrderSale) ([]domain.TopSeller, error) {
	ranked := rankSellers(sales, topSellersLimit)
	if len(ranked) == 0 {
		return []domain.TopSeller{}, nil
	}

	ids := make([]string, len(ranked))
	for i, t := range ranked {
		ids[i] = t.id
	}
	cars, err := s.repo.CarsByIDs(ctx, ids)
	if err != nil {
		return nil, wrapQuery("top seller cars", err)
	}

	out := make([]domain.TopSeller, len(ranked))
	for i, t := range ranked {
		name := domain.UnknownLabel
		if car, ok := cars[t.id]; ok && car != nil {
			name = car.DisplayName()
		}
		out[i] = domain.TopSeller{ID: t.id, Name: name, Sales: t.sales, Revenue: t.revenue}
	}
	return out, nil
}
