package handler

import (
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

type clientRequest struct {
	Name            string `json:"name"             validate:"required,max=120"`
	Email           string `json:"email"            validate:"omitempty,email"`
	Phone           string `json:"phone"            validate:"max=40"`
	AgreementNumber string `json:"agreement_number" validate:"required,max=64"`
	Address         string `json:"address"          validate:"max=400"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		AgreementNumber: r.AgreementNumber,
		Address:         r.Address,
	}
}

// orderRequest keeps amount untyped: the back office sends either a number
// or a formatted string.
type orderRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	CarID    string `json:"car_id"    validate:"required"`
	Status   string `json:"status"    validate:"omitempty,oneof=pending delivered cancelled"`
	Amount   any    `json:"amount"    validate:"required" swaggertype:"number"`
	Notes    string `json:"notes"     validate:"max=2000"`
}

func (r orderRequest) toInput() ports.OrderInput {
	return ports.OrderInput{
		ClientID: r.ClientID,
		CarID:    r.CarID,
		Status:   domain.OrderStatus(r.Status),
		Amount:   r.Amount,
		Notes:    r.Notes,
	}
}

type clientList struct {
	Clients []*domain.Client `json:"clients"`
}

type orderList struct {
	Orders []*domain.Order `json:"orders"`
}
