package handler

import (
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

type carRequest struct {
	BrandID      string   `json:"brand_id"     validate:"required"`
	Model        string   `json:"model"        validate:"required,max=120"`
	Year         int      `json:"year"         validate:"required,gte=1886"`
	Price        float64  `json:"price"        validate:"gte=0"`
	Mileage      int      `json:"mileage"      validate:"gte=0"`
	Fuel         string   `json:"fuel"         validate:"omitempty,oneof=petrol diesel hybrid electric lpg"`
	Transmission string   `json:"transmission" validate:"omitempty,oneof=manual automatic"`
	Color        string   `json:"color"`
	Description  string   `json:"description"  validate:"max=4000"`
	Images       []string `json:"images"       validate:"max=20,dive,url"`
	Status       string   `json:"status"       validate:"omitempty,oneof=available reserved sold"`
	Pinned       bool     `json:"pinned"`
}

func (r carRequest) toInput() ports.CarInput {
	return ports.CarInput{
		BrandID:      r.BrandID,
		Model:        r.Model,
		Year:         r.Year,
		Price:        r.Price,
		Mileage:      r.Mileage,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		Color:        r.Color,
		Description:  r.Description,
		Images:       r.Images,
		Status:       domain.CarStatus(r.Status),
		Pinned:       r.Pinned,
	}
}

type brandRequest struct {
	Name string `json:"name" validate:"required,max=80"`
	Logo string `json:"logo" validate:"omitempty,url"`
}

func (r brandRequest) toInput() ports.BrandInput {
	return ports.BrandInput{Name: r.Name, Logo: r.Logo}
}

type carList struct {
	Cars []*domain.Car `json:"cars"`
}

type brandList struct {
	Brands []*domain.Brand `json:"brands"`
}
