package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

func newCatalog() (*CatalogService, *memCars, *memBrands) {
	cars, brands := newMemCars(), newMemBrands()
	svc := NewCatalogService(cars, brands, zerolog.Nop())
	clock := statsNow
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, cars, brands
}

func TestCatalog_CreateCarDenormalizesBrand(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()

	brand, err := svc.CreateBrand(ctx, ports.BrandInput{Name: " Audi "})
	require.NoError(t, err)
	assert.Equal(t, "Audi", brand.Name)

	car, err := svc.CreateCar(ctx, ports.CarInput{BrandID: brand.ID, Model: "A4", Year: 2022, Price: 31000})
	require.NoError(t, err)
	assert.Equal(t, "Audi", car.Brand)
	assert.Equal(t, domain.CarAvailable, car.Status)
	assert.NotNil(t, car.Images)
	assert.Equal(t, "Audi A4", car.DisplayName())

	_, err = svc.CreateCar(ctx, ports.CarInput{BrandID: "nope", Model: "A4", Year: 2022})
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestCatalog_CarValidation(t *testing.T) {
	svc, _, _ := newCatalog()
	cases := map[string]ports.CarInput{
		"no brand":     {Model: "A4", Year: 2022},
		"no model":     {BrandID: "b", Year: 2022},
		"ancient year": {BrandID: "b", Model: "A4", Year: 1800},
		"future year":  {BrandID: "b", Model: "A4", Year: 2100},
		"neg price":    {BrandID: "b", Model: "A4", Year: 2022, Price: -1},
		"bad status":   {BrandID: "b", Model: "A4", Year: 2022, Status: "stolen"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateCar(context.Background(), in)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestCatalog_ListPinnedFirst(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()
	brand, err := svc.CreateBrand(ctx, ports.BrandInput{Name: "Kia"})
	require.NoError(t, err)

	_, err = svc.CreateCar(ctx, ports.CarInput{BrandID: brand.ID, Model: "old-pinned", Year: 2020, Pinned: true})
	require.NoError(t, err)
	_, err = svc.CreateCar(ctx, ports.CarInput{BrandID: brand.ID, Model: "older", Year: 2020})
	require.NoError(t, err)
	_, err = svc.CreateCar(ctx, ports.CarInput{BrandID: brand.ID, Model: "newest", Year: 2020, Status: domain.CarSold})
	require.NoError(t, err)

	list, err := svc.ListCars(ctx, domain.CarFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "old-pinned", list[0].Model)
	assert.Equal(t, "newest", list[1].Model)

	sold, err := svc.ListCars(ctx, domain.CarFilter{Status: domain.CarSold})
	require.NoError(t, err)
	assert.Len(t, sold, 1)

	_, err = svc.ListCars(ctx, domain.CarFilter{Status: "bogus"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestCatalog_DeleteBrandInUse(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()
	brand, err := svc.CreateBrand(ctx, ports.BrandInput{Name: "BMW"})
	require.NoError(t, err)
	car, err := svc.CreateCar(ctx, ports.CarInput{BrandID: brand.ID, Model: "M3", Year: 2023})
	require.NoError(t, err)

	err = svc.DeleteBrand(ctx, brand.ID)
	assert.ErrorIs(t, err, domain.ErrBrandInUse)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	require.NoError(t, svc.DeleteCar(ctx, car.ID))
	assert.NoError(t, svc.DeleteBrand(ctx, brand.ID))
}

func TestCatalog_DuplicateBrand(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()
	_, err := svc.CreateBrand(ctx, ports.BrandInput{Name: "Volvo"})
	require.NoError(t, err)
	_, err = svc.CreateBrand(ctx, ports.BrandInput{Name: "volvo"})
	assert.ErrorIs(t, err, domain.ErrBrandExists)

	_, err = svc.CreateBrand(ctx, ports.BrandInput{Name: "  "})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestCatalog_UpdateCar(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()
	audi, _ := svc.CreateBrand(ctx, ports.BrandInput{Name: "Audi"})
	bmw, _ := svc.CreateBrand(ctx, ports.BrandInput{Name: "BMW"})
	car, err := svc.CreateCar(ctx, ports.CarInput{BrandID: audi.ID, Model: "A4", Year: 2022})
	require.NoError(t, err)

	updated, err := svc.UpdateCar(ctx, car.ID, ports.CarInput{BrandID: bmw.ID, Model: "X5", Year: 2023, Status: domain.CarReserved})
	require.NoError(t, err)
	assert.Equal(t, "BMW", updated.Brand)
	assert.Equal(t, domain.CarReserved, updated.Status)
	assert.Equal(t, car.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(car.UpdatedAt))

	_, err = svc.UpdateCar(ctx, "missing", ports.CarInput{BrandID: bmw.ID, Model: "X5", Year: 2023})
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}
