package ports

import (
	"context"
	"time"

	"github.com/autohaus/dealership/internal/core/domain"
)

// SignupInput carries the fields needed to create an account.
type SignupInput struct {
	Email    string
	Name     string
	Password string
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}

// AuthService covers signup, login and account administration for both
// roles.
type AuthService interface {
	Signup(ctx context.Context, role domain.Role, in SignupInput) (*domain.Account, error)
	Login(ctx context.Context, role domain.Role, email, password string) (*Session, error)
	Me(ctx context.Context, who *domain.Identity) (*domain.Account, error)
	ChangePassword(ctx context.Context, who *domain.Identity, current, next string) error
	ListAccounts(ctx context.Context, role domain.Role) ([]*domain.Account, error)
	DeleteAccount(ctx context.Context, role domain.Role, id string) error
}

// DashboardService computes the admin dashboard.
type DashboardService interface {
	ComputeDashboard(ctx context.Context) (*domain.Snapshot, error)
}

// CarInput is the writable part of a car.
type CarInput struct {
	BrandID      string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	Fuel         string
	Transmission string
	Color        string
	Description  string
	Images       []string
	Status       domain.CarStatus
	Pinned       bool
}

// BrandInput is the writable part of a brand.
type BrandInput struct {
	Name string
	Logo string
}

// CatalogService manages cars and brands.
type CatalogService interface {
	CreateCar(ctx context.Context, in CarInput) (*domain.Car, error)
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	UpdateCar(ctx context.Context, id string, in CarInput) (*domain.Car, error)
	DeleteCar(ctx context.Context, id string) error

	CreateBrand(ctx context.Context, in BrandInput) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
	UpdateBrand(ctx context.Context, id string, in BrandInput) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

// ClientInput is the writable part of a client.
type ClientInput struct {
	Name            string
	Email           string
	Phone           string
	AgreementNumber string
	Address         string
}

// OrderInput is the writable part of an order.
type OrderInput struct {
	ClientID string
	CarID    string
	Status   domain.OrderStatus
	Amount   any
	Notes    string
}

// SalesService manages clients and orders.
type SalesService interface {
	CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, id string, in ClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, in OrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, in OrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// DocumentInput is the writable part of a document.
type DocumentInput struct {
	Type     domain.DocumentType
	Status   string
	Title    string
	Notes    string
	ClientID string
	CarID    string
	OrderID  string
}

// DocumentService manages documents and public tracking.
type DocumentService interface {
	CreateDocument(ctx context.Context, in DocumentInput) (*domain.Document, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	ListDocuments(ctx context.Context) ([]*domain.Document, error)
	UpdateDocument(ctx context.Context, id string, in DocumentInput) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	Track(ctx context.Context, code string) (*domain.TrackingView, error)
	Resolve(ctx context.Context, src domain.DocumentSource) (*domain.Document, error)
}

// RateService converts between currencies with configured fallbacks.
type RateService interface {
	Rate(ctx context.Context, from, to string) (domain.Rate, error)
}
