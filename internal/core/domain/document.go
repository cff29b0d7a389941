package domain

import "time"

// DocumentType tags what a document records.
type DocumentType string

const (
	DocContract     DocumentType = "contract"
	DocInvoice      DocumentType = "invoice"
	DocRegistration DocumentType = "registration"
	DocTracking     DocumentType = "tracking"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case DocContract, DocInvoice, DocRegistration, DocTracking:
		return true
	}
	return false
}

// Document is a tracking or record artifact tied to a client, car or order.
type Document struct {
	ID           string       `json:"id" bson:"_id"`
	Type         DocumentType `json:"type" bson:"type"`
	Status       string       `json:"status" bson:"status"`
	Title        string       `json:"title" bson:"title"`
	Notes        string       `json:"notes,omitempty" bson:"notes,omitempty"`
	ClientID     string       `json:"client_id,omitempty" bson:"client_id,omitempty"`
	CarID        string       `json:"car_id,omitempty" bson:"car_id,omitempty"`
	OrderID      string       `json:"order_id,omitempty" bson:"order_id,omitempty"`
	TrackingCode string       `json:"tracking_code" bson:"tracking_code"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

// TrackingView is the public projection of a document.
type TrackingView struct {
	TrackingCode string       `json:"tracking_code"`
	Type         DocumentType `json:"type"`
	Status       string       `json:"status"`
	Title        string       `json:"title"`
	Car          string       `json:"car"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// DocumentSource is either a stored document id or an inline record.
// Exactly one of the two variants is set; build it with DocumentByID or
// DocumentInline.
type DocumentSource struct {
	id     string
	inline *Document
}

// DocumentByID references a persisted document.
func DocumentByID(id string) DocumentSource {
	return DocumentSource{id: id}
}

// DocumentInline carries a fully specified record.
func DocumentInline(doc Document) DocumentSource {
	return DocumentSource{inline: &doc}
}

// ID returns the referenced id and true for the ByID variant.
func (s DocumentSource) ID() (string, bool) {
	return s.id, s.inline == nil && s.id != ""
}

// Inline returns the record and true for the Inline variant.
func (s DocumentSource) Inline() (Document, bool) {
	if s.inline == nil {
		return Document{}, false
	}
	return *s.inline, true
}
