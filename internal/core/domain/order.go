package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Client is a dealership customer (distinct from storefront accounts).
type Client struct {
	ID              string    `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	AgreementNumber string    `json:"agreement_number" bson:"agreement_number"`
	Address         string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// Order links a client to a car. Amount keeps whatever the back office
// stored (number or string); use ParseAmount before summing.
type Order struct {
	ID        string      `json:"id" bson:"_id"`
	ClientID  string      `json:"client_id" bson:"client_id"`
	CarID     string      `json:"car_id" bson:"car_id"`
	Status    OrderStatus `json:"status" bson:"status"`
	Amount    any         `json:"amount" bson:"amount"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// ParseAmount coerces a stored amount to a float. Anything that is not a
// finite number, or a string holding one, counts as zero.
func ParseAmount(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case primitive.Decimal128:
		parsed, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", ""))
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
