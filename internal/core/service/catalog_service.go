package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

const minCarYear = 1886

// CatalogService manages cars and brands.
type CatalogService struct {
	cars   ports.CarRepository
	brands ports.BrandRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewCatalogService(cars ports.CarRepository, brands ports.BrandRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{cars: cars, brands: brands, log: log, now: time.Now}
}

func (s *CatalogService) CreateCar(ctx context.Context, in ports.CarInput) (*domain.Car, error) {
	if err := s.validateCar(&in); err != nil {
		return nil, err
	}
	brand, err := s.brands.FindByID(ctx, in.BrandID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	car := &domain.Car{CreatedAt: now}
	applyCarInput(car, in, brand)
	car.UpdatedAt = now

	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	s.log.Info().Str("car_id", car.ID).Str("brand", car.Brand).Msg("car created")
	return car, nil
}

func (s *CatalogService) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	return s.cars.FindByID(ctx, id)
}

func (s *CatalogService) ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.Validation("unknown car status %q", filter.Status)
	}
	return s.cars.List(ctx, filter)
}

func (s *CatalogService) UpdateCar(ctx context.Context, id string, in ports.CarInput) (*domain.Car, error) {
	if err := s.validateCar(&in); err != nil {
		return nil, err
	}
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brand, err := s.brands.FindByID(ctx, in.BrandID)
	if err != nil {
		return nil, err
	}

	applyCarInput(car, in, brand)
	car.UpdatedAt = s.now().UTC()
	if err := s.cars.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CatalogService) DeleteCar(ctx context.Context, id string) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("car_id", id).Msg("car deleted")
	return nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, in ports.BrandInput) (*domain.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	brand := &domain.Brand{Name: name, Logo: strings.TrimSpace(in.Logo), CreatedAt: s.now().UTC()}
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id string, in ports.BrandInput) (*domain.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brand.Name = name
	brand.Logo = strings.TrimSpace(in.Logo)
	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand refuses to remove a brand that cars still reference.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	n, err := s.cars.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrBrandInUse
	}
	return s.brands.Delete(ctx, id)
}

func (s *CatalogService) validateCar(in *ports.CarInput) error {
	in.Model = strings.TrimSpace(in.Model)
	if in.BrandID == "" {
		return domain.Validation("brand_id is required")
	}
	if in.Model == "" {
		return domain.Validation("model is required")
	}
	maxYear := s.now().Year() + 1
	if in.Year < minCarYear || in.Year > maxYear {
		return domain.Validation("year must be between %d and %d", minCarYear, maxYear)
	}
	if in.Price < 0 {
		return domain.Validation("price must not be negative")
	}
	if in.Mileage < 0 {
		return domain.Validation("mileage must not be negative")
	}
	if in.Status == "" {
		in.Status = domain.CarAvailable
	}
	if !in.Status.Valid() {
		return domain.Validation("unknown car status %q", in.Status)
	}
	return nil
}

func applyCarInput(car *domain.Car, in ports.CarInput, brand *domain.Brand) {
	car.BrandID = brand.ID
	car.Brand = brand.Name
	car.Model = in.Model
	car.Year = in.Year
	car.Price = in.Price
	car.Mileage = in.Mileage
	car.Fuel = in.Fuel
	car.Transmission = in.Transmission
	car.Color = in.Color
	car.Description = in.Description
	car.Images = in.Images
	if car.Images == nil {
		car.Images = []string{}
	}
	car.Status = in.Status
	car.Pinned = in.Pinned
}
