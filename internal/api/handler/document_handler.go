package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/core/ports"
)

// DocumentHandler serves admin document management and public tracking.
type DocumentHandler struct {
	documents ports.DocumentService
}

func NewDocumentHandler(documents ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// ListDocuments
//
// @Summary      List documents
// @Tags         admin-documents
// @Produce      json
// @Success      200  {object}  documentList
// @Router       /api/admin/documents [get]
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	docs, err := h.documents.ListDocuments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documentList{Documents: docs})
}

// GetDocument
//
// @Summary      Get document
// @Tags         admin-documents
// @Produce      json
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  errorBody
// @Router       /api/admin/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	doc, err := h.documents.GetDocument(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// CreateDocument assigns a fresh tracking code.
//
// @Summary      Create document
// @Tags         admin-documents
// @Accept       json
// @Produce      json
// @Param        body  body      documentRequest  true  "Document"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  errorBody
// @Router       /api/admin/documents [post]
func (h *DocumentHandler) CreateDocument(c echo.Context) error {
	var req documentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	doc, err := h.documents.CreateDocument(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// UpdateDocument keeps the tracking code.
//
// @Summary      Update document
// @Tags         admin-documents
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Document id"
// @Param        body  body      documentRequest  true  "Document"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c echo.Context) error {
	var req documentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	doc, err := h.documents.UpdateDocument(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// DeleteDocument
//
// @Summary      Delete document
// @Tags         admin-documents
// @Param        id   path  string  true  "Document id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/admin/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c echo.Context) error {
	if err := h.documents.DeleteDocument(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Preview resolves a stored or inline document into the record a renderer
// would stamp.
//
// @Summary      Preview document
// @Tags         admin-documents
// @Accept       json
// @Produce      json
// @Param        body  body      previewRequest  true  "documentId or document"
// @Success      200   {object}  previewResponse
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/documents/preview [post]
func (h *DocumentHandler) Preview(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	src, err := req.source()
	if err != nil {
		return err
	}

	kind := "stored"
	if req.Document != nil {
		kind = "inline"
		if err := c.Validate(req.Document); err != nil {
			return err
		}
	}

	doc, err := h.documents.Resolve(c.Request().Context(), src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, previewResponse{Source: kind, Document: doc})
}

// Track is the public lookup by tracking code.
//
// @Summary      Track document
// @Tags         tracking
// @Produce      json
// @Param        code  path      string  true  "Tracking code"
// @Success      200   {object}  domain.TrackingView
// @Failure      404   {object}  errorBody
// @Router       /api/tracking/{code} [get]
func (h *DocumentHandler) Track(c echo.Context) error {
	view, err := h.documents.Track(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
