// internal/api/handler/bill.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pahana-billing/internal/service"
	"pahana-billing/internal/util"
)

// BillHandler handles HTTP requests for bill calculation and lookup.
type BillHandler struct {
	service service.BillingService
	logger  *slog.Logger
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(svc service.BillingService, logger *slog.Logger) *BillHandler {
	return &BillHandler{
		service: svc,
		logger:  logger,
	}
}

// BillLineRequest is one purchased-item line on a calculation request.
type BillLineRequest struct {
	ItemCode string `json:"item_code" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// CalculateBillRequest represents the request body for bill calculation.
type CalculateBillRequest struct {
	AccountNo string            `json:"account_no" validate:"required"`
	Lines     []BillLineRequest `json:"lines" validate:"dive"`
}

// Calculate computes and persists a bill for a customer.
// POST /api/bills/calculate
func (h *BillHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, h.logger, err)
		return
	}

	lines := make([]service.BillLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.BillLine{ItemCode: l.ItemCode, Quantity: l.Quantity})
	}

	bill, skipped, err := h.service.CreateBill(r.Context(), req.AccountNo, lines)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"bill":          newBillResponse(bill),
		"skipped_items": skipped,
	})
}

// List handles listing all bills, newest first.
// GET /api/bills
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.ListBills(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, newBillResponses(bills))
}

// Get handles fetching one bill.
// GET /api/bills/{billID}
func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "billID")
	bill, err := h.service.GetBill(r.Context(), billID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, newBillResponse(bill))
}
