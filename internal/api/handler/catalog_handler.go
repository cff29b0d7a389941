package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// CatalogHandler serves the public catalog and its admin management.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCars returns pinned cars first, then newest.
//
// @Summary      List cars
// @Tags         catalog
// @Produce      json
// @Param        status  query     string  false  "available, reserved or sold"
// @Param        brand   query     string  false  "Brand id"
// @Success      200     {object}  carList
// @Failure      400     {object}  errorBody
// @Router       /api/cars [get]
func (h *CatalogHandler) ListCars(c echo.Context) error {
	cars, err := h.catalog.ListCars(c.Request().Context(), domain.CarFilter{
		Status:  domain.CarStatus(c.QueryParam("status")),
		BrandID: c.QueryParam("brand"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, carList{Cars: cars})
}

// GetCar
//
// @Summary      Get car
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  domain.Car
// @Failure      404  {object}  errorBody
// @Router       /api/cars/{id} [get]
func (h *CatalogHandler) GetCar(c echo.Context) error {
	car, err := h.catalog.GetCar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// CreateCar
//
// @Summary      Create car
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        body  body      carRequest  true  "Car"
// @Success      201   {object}  domain.Car
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/cars [post]
func (h *CatalogHandler) CreateCar(c echo.Context) error {
	var req carRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	car, err := h.catalog.CreateCar(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, car)
}

// UpdateCar
//
// @Summary      Update car
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "Car id"
// @Param        body  body      carRequest  true  "Car"
// @Success      200   {object}  domain.Car
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/cars/{id} [put]
func (h *CatalogHandler) UpdateCar(c echo.Context) error {
	var req carRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	car, err := h.catalog.UpdateCar(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// DeleteCar
//
// @Summary      Delete car
// @Tags         admin-catalog
// @Param        id   path  string  true  "Car id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/admin/cars/{id} [delete]
func (h *CatalogHandler) DeleteCar(c echo.Context) error {
	if err := h.catalog.DeleteCar(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBrands
//
// @Summary      List brands
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  brandList
// @Router       /api/brands [get]
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalog.ListBrands(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brandList{Brands: brands})
}

// CreateBrand
//
// @Summary      Create brand
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        body  body      brandRequest  true  "Brand"
// @Success      201   {object}  domain.Brand
// @Failure      409   {object}  errorBody
// @Router       /api/admin/brands [post]
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req brandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	brand, err := h.catalog.CreateBrand(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, brand)
}

// UpdateBrand
//
// @Summary      Update brand
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Brand id"
// @Param        body  body      brandRequest  true  "Brand"
// @Success      200   {object}  domain.Brand
// @Failure      404   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/admin/brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	var req brandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	brand, err := h.catalog.UpdateBrand(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// DeleteBrand fails with 409 while cars still reference the brand.
//
// @Summary      Delete brand
// @Tags         admin-catalog
// @Param        id   path  string  true  "Brand id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Failure      409  {object}  errorBody
// @Router       /api/admin/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	if err := h.catalog.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
