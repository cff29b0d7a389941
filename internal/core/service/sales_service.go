package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// SalesService manages clients and their orders.
type SalesService struct {
	clients ports.ClientRepository
	orders  ports.OrderRepository
	cars    ports.CarRepository
	log     zerolog.Logger
	now     func() time.Time
}

func NewSalesService(clients ports.ClientRepository, orders ports.OrderRepository, cars ports.CarRepository, log zerolog.Logger) *SalesService {
	return &SalesService{clients: clients, orders: orders, cars: cars, log: log, now: time.Now}
}

func (s *SalesService) CreateClient(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	if err := validateClient(&in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	client := &domain.Client{CreatedAt: now, UpdatedAt: now}
	applyClientInput(client, in)
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	s.log.Info().Str("client_id", client.ID).Msg("client created")
	return client, nil
}

func (s *SalesService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.FindByID(ctx, id)
}

func (s *SalesService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *SalesService) UpdateClient(ctx context.Context, id string, in ports.ClientInput) (*domain.Client, error) {
	if err := validateClient(&in); err != nil {
		return nil, err
	}
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyClientInput(client, in)
	client.UpdatedAt = s.now().UTC()
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *SalesService) DeleteClient(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

// CreateOrder requires the referenced client and car to exist.
func (s *SalesService) CreateOrder(ctx context.Context, in ports.OrderInput) (*domain.Order, error) {
	if err := validateOrder(&in); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	order := &domain.Order{
		ClientID:  in.ClientID,
		CarID:     in.CarID,
		Status:    in.Status,
		Amount:    in.Amount,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.markSold(ctx, order); err != nil {
		return nil, err
	}
	s.log.Info().Str("order_id", order.ID).Str("status", string(order.Status)).Msg("order created")
	return order, nil
}

func (s *SalesService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *SalesService) ListOrders(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, domain.Validation("unknown order status %q", status)
	}
	return s.orders.List(ctx, status)
}

func (s *SalesService) UpdateOrder(ctx context.Context, id string, in ports.OrderInput) (*domain.Order, error) {
	if err := validateOrder(&in); err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != order.ClientID || in.CarID != order.CarID {
		if err := s.checkReferences(ctx, in); err != nil {
			return nil, err
		}
	}

	wasDelivered := order.Status == domain.OrderDelivered
	order.ClientID = in.ClientID
	order.CarID = in.CarID
	order.Status = in.Status
	order.Amount = in.Amount
	order.Notes = in.Notes
	order.UpdatedAt = s.now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	if !wasDelivered {
		if err := s.markSold(ctx, order); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (s *SalesService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func (s *SalesService) checkReferences(ctx context.Context, in ports.OrderInput) error {
	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return err
	}
	if _, err := s.cars.FindByID(ctx, in.CarID); err != nil {
		return err
	}
	return nil
}

// markSold flips the car of a delivered order to sold. A car removed since
// the order was placed is ignored.
func (s *SalesService) markSold(ctx context.Context, order *domain.Order) error {
	if order.Status != domain.OrderDelivered {
		return nil
	}
	err := s.cars.SetStatus(ctx, order.CarID, domain.CarSold)
	if errors.Is(err, domain.ErrCarNotFound) {
		s.log.Warn().Str("order_id", order.ID).Str("car_id", order.CarID).Msg("delivered order references missing car")
		return nil
	}
	return err
}

func validateClient(in *ports.ClientInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.AgreementNumber = strings.TrimSpace(in.AgreementNumber)
	in.Email = domain.NormalizeEmail(in.Email)
	if in.Name == "" {
		return domain.Validation("name is required")
	}
	if in.AgreementNumber == "" {
		return domain.Validation("agreement_number is required")
	}
	return nil
}

func applyClientInput(client *domain.Client, in ports.ClientInput) {
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = strings.TrimSpace(in.Phone)
	client.AgreementNumber = in.AgreementNumber
	client.Address = strings.TrimSpace(in.Address)
}

func validateOrder(in *ports.OrderInput) error {
	if in.ClientID == "" {
		return domain.Validation("client_id is required")
	}
	if in.CarID == "" {
		return domain.Validation("car_id is required")
	}
	if in.Status == "" {
		in.Status = domain.OrderPending
	}
	if !in.Status.Valid() {
		return domain.Validation("unknown order status %q", in.Status)
	}
	switch v := in.Amount.(type) {
	case nil:
		return domain.Validation("amount is required")
	case string:
		in.Amount = strings.TrimSpace(v)
	case float64, int, int64:
	default:
		return domain.Validation("amount must be a number or a string")
	}
	return nil
}
