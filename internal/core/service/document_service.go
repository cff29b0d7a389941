package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

const (
	trackingPrefix  = "TRK-"
	trackingCodeLen = 8
	// tracking codes are random; a collision is retried a few times
	trackingAttempts = 3
	defaultDocStatus = "draft"
)

// DocumentService manages documents and the public tracking lookup.
type DocumentService struct {
	docs    ports.DocumentRepository
	cars    ports.CarRepository
	log     zerolog.Logger
	now     func() time.Time
	newCode func() string
}

func NewDocumentService(docs ports.DocumentRepository, cars ports.CarRepository, log zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, cars: cars, log: log, now: time.Now, newCode: NewTrackingCode}
}

// NewTrackingCode returns a short, upper-case code derived from a random UUID.
func NewTrackingCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingPrefix + strings.ToUpper(raw[:trackingCodeLen])
}

func (s *DocumentService) CreateDocument(ctx context.Context, in ports.DocumentInput) (*domain.Document, error) {
	if err := validateDocument(&in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	doc := &domain.Document{CreatedAt: now, UpdatedAt: now}
	applyDocumentInput(doc, in)

	var err error
	for attempt := 0; attempt < trackingAttempts; attempt++ {
		doc.TrackingCode = s.newCode()
		err = s.docs.Create(ctx, doc)
		if !errors.Is(err, domain.ErrTrackingExists) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("document_id", doc.ID).Str("tracking_code", doc.TrackingCode).Msg("document created")
	return doc, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	return s.docs.FindByID(ctx, id)
}

func (s *DocumentService) ListDocuments(ctx context.Context) ([]*domain.Document, error) {
	return s.docs.List(ctx)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, in ports.DocumentInput) (*domain.Document, error) {
	if err := validateDocument(&in); err != nil {
		return nil, err
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyDocumentInput(doc, in)
	doc.UpdatedAt = s.now().UTC()
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, id)
}

// Track returns the public view of the document with the given code.
func (s *DocumentService) Track(ctx context.Context, code string) (*domain.TrackingView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.Validation("tracking code is required")
	}
	doc, err := s.docs.FindByTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}

	view := &domain.TrackingView{
		TrackingCode: doc.TrackingCode,
		Type:         doc.Type,
		Status:       doc.Status,
		Title:        doc.Title,
		Car:          domain.UnknownLabel,
		UpdatedAt:    doc.UpdatedAt,
	}
	if doc.CarID != "" {
		car, err := s.cars.FindByID(ctx, doc.CarID)
		switch {
		case err == nil:
			view.Car = car.DisplayName()
		case !errors.Is(err, domain.ErrCarNotFound):
			return nil, err
		}
	}
	return view, nil
}

// Resolve turns either variant of a DocumentSource into a normalized record.
// ByID loads the stored document; Inline is validated but not persisted.
func (s *DocumentService) Resolve(ctx context.Context, src domain.DocumentSource) (*domain.Document, error) {
	if id, ok := src.ID(); ok {
		return s.docs.FindByID(ctx, id)
	}
	inline, ok := src.Inline()
	if !ok {
		return nil, domain.Validation("either documentId or document is required")
	}

	in := ports.DocumentInput{
		Type:     inline.Type,
		Status:   inline.Status,
		Title:    inline.Title,
		Notes:    inline.Notes,
		ClientID: inline.ClientID,
		CarID:    inline.CarID,
		OrderID:  inline.OrderID,
	}
	if err := validateDocument(&in); err != nil {
		return nil, err
	}
	applyDocumentInput(&inline, in)
	if inline.CreatedAt.IsZero() {
		inline.CreatedAt = s.now().UTC()
	}
	if inline.UpdatedAt.IsZero() {
		inline.UpdatedAt = inline.CreatedAt
	}
	return &inline, nil
}

func validateDocument(in *ports.DocumentInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Status = strings.TrimSpace(in.Status)
	if !in.Type.Valid() {
		return domain.Validation("unknown document type %q", in.Type)
	}
	if in.Title == "" {
		return domain.Validation("title is required")
	}
	if in.Status == "" {
		in.Status = defaultDocStatus
	}
	return nil
}

func applyDocumentInput(doc *domain.Document, in ports.DocumentInput) {
	doc.Type = in.Type
	doc.Status = in.Status
	doc.Title = in.Title
	doc.Notes = in.Notes
	doc.ClientID = in.ClientID
	doc.CarID = in.CarID
	doc.OrderID = in.OrderID
}
