// internal/api/handler/response.go
package handler

import (
	"time"

	"pahana-billing/internal/domain"
)

// Response types render monetary fields as strings fixed to two decimal
// places, so "25.50" never degrades to "25.5" on the wire.

// ItemResponse is the API representation of a catalog item.
type ItemResponse struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	UnitPrice string    `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		Code:      i.Code,
		Name:      i.Name,
		UnitPrice: i.UnitPrice.StringFixed(2),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func newItemResponses(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, newItemResponse(&items[i]))
	}
	return out
}

// BillResponse is the API representation of a computed bill.
type BillResponse struct {
	BillID       string    `json:"bill_id"`
	AccountNo    string    `json:"account_no"`
	BillTime     time.Time `json:"bill_time"`
	Units        int       `json:"units"`
	EnergyCharge string    `json:"energy_charge"`
	ItemTotal    string    `json:"item_total"`
	Tax          string    `json:"tax"`
	GrandTotal   string    `json:"grand_total"`
	CreatedAt    time.Time `json:"created_at"`
}

func newBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:       b.BillID,
		AccountNo:    b.AccountNo,
		BillTime:     b.BillTime,
		Units:        b.Units,
		EnergyCharge: b.EnergyCharge.StringFixed(2),
		ItemTotal:    b.ItemTotal.StringFixed(2),
		Tax:          b.Tax.StringFixed(2),
		GrandTotal:   b.GrandTotal.StringFixed(2),
		CreatedAt:    b.CreatedAt,
	}
}

func newBillResponses(bills []domain.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, newBillResponse(&bills[i]))
	}
	return out
}
