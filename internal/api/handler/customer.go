// internal/api/handler/customer.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pahana-billing/internal/service"
	"pahana-billing/internal/util"
)

// CustomerHandler handles HTTP requests for customer accounts.
type CustomerHandler struct {
	service service.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateCustomerRequest represents the request body for creating a customer.
type CreateCustomerRequest struct {
	AccountNo     string `json:"account_no" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	UnitsConsumed int    `json:"units_consumed" validate:"gte=0"`
}

// Create handles customer creation.
// POST /api/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	customer, err := h.service.Create(r.Context(), req.AccountNo, req.Name, req.Address, req.Phone, req.UnitsConsumed)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, customer)
}

// List handles listing all customers.
// GET /api/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, customers)
}

// Get handles fetching one customer.
// GET /api/customers/{accountNo}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	customer, err := h.service.Get(r.Context(), accountNo)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, customer)
}

// UpdateCustomerRequest represents a partial customer update. Absent fields
// keep their prior values.
type UpdateCustomerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	UnitsConsumed *int    `json:"units_consumed" validate:"omitempty,gte=0"`
}

// Update handles a partial customer update.
// PUT /api/customers/{accountNo}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	var req UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	customer, err := h.service.Update(r.Context(), accountNo, service.UpdateCustomerParams{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		UnitsConsumed: req.UnitsConsumed,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, customer)
}

// Delete handles customer deletion.
// DELETE /api/customers/{accountNo}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	if err := h.service.Delete(r.Context(), accountNo); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
