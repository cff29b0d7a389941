package domain

import "time"

// CarStatus is the availability of an inventory item.
type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarReserved  CarStatus = "reserved"
	CarSold      CarStatus = "sold"
)

// Valid reports whether s is a known availability status.
func (s CarStatus) Valid() bool {
	switch s {
	case CarAvailable, CarReserved, CarSold:
		return true
	}
	return false
}

// Car is a catalog entry.
type Car struct {
	ID           string    `json:"id" bson:"_id"`
	BrandID      string    `json:"brand_id" bson:"brand_id"`
	Brand        string    `json:"brand" bson:"brand"`
	Model        string    `json:"model" bson:"model"`
	Year         int       `json:"year" bson:"year"`
	Price        float64   `json:"price" bson:"price"`
	Mileage      int       `json:"mileage" bson:"mileage"`
	Fuel         string    `json:"fuel,omitempty" bson:"fuel,omitempty"`
	Transmission string    `json:"transmission,omitempty" bson:"transmission,omitempty"`
	Color        string    `json:"color,omitempty" bson:"color,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Images       []string  `json:"images" bson:"images"`
	Status       CarStatus `json:"status" bson:"status"`
	Pinned       bool      `json:"pinned" bson:"pinned"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// DisplayName is the human label used in feeds and rankings.
func (c *Car) DisplayName() string {
	name := c.Brand
	if c.Model != "" {
		if name != "" {
			name += " "
		}
		name += c.Model
	}
	if name == "" {
		return UnknownLabel
	}
	return name
}

// Brand groups cars; the dashboard reports brands as "categories".
type Brand struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Logo      string    `json:"logo,omitempty" bson:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CarFilter narrows catalog listings. Zero values mean no filter.
type CarFilter struct {
	Status  CarStatus
	BrandID string
}

// UnknownLabel replaces references that no longer resolve.
const UnknownLabel = "Unknown"
