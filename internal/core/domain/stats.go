package domain

import "time"

// ActivityType categorizes a dashboard feed entry.
type ActivityType string

const (
	ActivitySale   ActivityType = "sale"
	ActivityOrder  ActivityType = "order"
	ActivityUpdate ActivityType = "update"
)

// InventoryCounts is the faceted count over cars.
type InventoryCounts struct {
	Total     int64 `bson:"total"`
	Available int64 `bson:"available"`
	Sold      int64 `bson:"sold"`
}

// OrderCounts is the faceted count over orders by status.
type OrderCounts struct {
	Total     int64 `bson:"total"`
	Pending   int64 `bson:"pending"`
	Delivered int64 `bson:"delivered"`
}

// OrderSale is the projection of a delivered order used for revenue and
// best-seller reduction. Amount is the raw stored value.
type OrderSale struct {
	OrderID   string    `bson:"_id"`
	CarID     string    `bson:"car_id"`
	Amount    any       `bson:"amount"`
	CreatedAt time.Time `bson:"created_at"`
}

// RecentOrder is an order joined to its client and car. Missing references
// leave the names empty.
type RecentOrder struct {
	ID         string      `bson:"_id"`
	Status     OrderStatus `bson:"status"`
	Amount     any         `bson:"amount"`
	CreatedAt  time.Time   `bson:"created_at"`
	ClientName string      `bson:"client_name"`
	CarBrand   string      `bson:"car_brand"`
	CarModel   string      `bson:"car_model"`
}

// Stats is the counter block of the dashboard.
type Stats struct {
	TotalCars       int64   `json:"totalCars"`
	AvailableCars   int64   `json:"availableCars"`
	SoldCars        int64   `json:"soldCars"`
	TotalUsers      int64   `json:"totalUsers"`
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	Categories      int64   `json:"categories"`
	ActiveTracking  int64   `json:"activeTracking"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID      string       `json:"id"`
	Type    ActivityType `json:"type"`
	Message string       `json:"message"`
	Time    string       `json:"time"`
	Icon    string       `json:"icon"`
}

// TopSeller is one row of the best-seller ranking.
type TopSeller struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// DocumentSummary is a recent document as shown on the dashboard.
type DocumentSummary struct {
	ID        string       `json:"id"`
	Type      DocumentType `json:"type"`
	Status    string       `json:"status"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Snapshot is the computed-on-demand dashboard. It is never persisted.
type Snapshot struct {
	Stats            Stats             `json:"stats"`
	RecentActivities []Activity        `json:"recentActivities"`
	TopSellingCars   []TopSeller       `json:"topSellingCars"`
	RecentDocuments  []DocumentSummary `json:"recentDocuments"`
}
