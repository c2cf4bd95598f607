// internal/api/handler/item.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"pahana-billing/internal/service"
	"pahana-billing/internal/util"
)

// ItemHandler handles HTTP requests for the item catalog.
type ItemHandler struct {
	service service.ItemService
	logger  *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc service.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateItemRequest represents the request body for creating an item.
type CreateItemRequest struct {
	Code      string          `json:"code" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Create handles item creation.
// POST /api/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}
	if req.UnitPrice.IsNegative() {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	item, err := h.service.Create(r.Context(), req.Code, req.Name, req.UnitPrice)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, newItemResponse(item))
}

// List handles listing all items.
// GET /api/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, newItemResponses(items))
}

// Get handles fetching one item.
// GET /api/items/{code}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	item, err := h.service.Get(r.Context(), code)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, newItemResponse(item))
}

// UpdateItemRequest represents a partial item update. Absent fields keep
// their prior values.
type UpdateItemRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// Update handles a partial item update.
// PUT /api/items/{code}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}
	if req.UnitPrice != nil && req.UnitPrice.IsNegative() {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	item, err := h.service.Update(r.Context(), code, service.UpdateItemParams{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, newItemResponse(item))
}

// Delete handles item deletion.
// DELETE /api/items/{code}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.Delete(r.Context(), code); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
