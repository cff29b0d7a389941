package handler

import (
	"strings"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

type documentRequest struct {
	Type     string `json:"type"      validate:"required,oneof=contract invoice registration tracking"`
	Status   string `json:"status"    validate:"max=40"`
	Title    string `json:"title"     validate:"required,max=200"`
	Notes    string `json:"notes"     validate:"max=4000"`
	ClientID string `json:"client_id"`
	CarID    string `json:"car_id"`
	OrderID  string `json:"order_id"`
}

func (r documentRequest) toInput() ports.DocumentInput {
	return ports.DocumentInput{
		Type:     domain.DocumentType(r.Type),
		Status:   r.Status,
		Title:    r.Title,
		Notes:    r.Notes,
		ClientID: r.ClientID,
		CarID:    r.CarID,
		OrderID:  r.OrderID,
	}
}

func (r documentRequest) toDocument() domain.Document {
	return domain.Document{
		Type:     domain.DocumentType(r.Type),
		Status:   r.Status,
		Title:    r.Title,
		Notes:    r.Notes,
		ClientID: r.ClientID,
		CarID:    r.CarID,
		OrderID:  r.OrderID,
	}
}

// previewRequest carries exactly one of documentId or document.
type previewRequest struct {
	DocumentID string           `json:"documentId"`
	Document   *documentRequest `json:"document"`
}

// source resolves the request into the tagged union. Inline fields are
// validated by the caller.
func (r previewRequest) source() (domain.DocumentSource, error) {
	id := strings.TrimSpace(r.DocumentID)
	switch {
	case id != "" && r.Document != nil:
		return domain.DocumentSource{}, domain.Validation("provide either documentId or document, not both")
	case id != "":
		return domain.DocumentByID(id), nil
	case r.Document != nil:
		return domain.DocumentInline(r.Document.toDocument()), nil
	default:
		return domain.DocumentSource{}, domain.Validation("either documentId or document is required")
	}
}

type documentList struct {
	Documents []*domain.Document `json:"documents"`
}

type previewResponse struct {
	Source   string           `json:"source"`
	Document *domain.Document `json:"document"`
}
