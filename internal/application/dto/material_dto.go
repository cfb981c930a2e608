package dto

import "github.com/shopspring/decimal"

// SaveMaterialRequest alta de ítem en la lista de compras.
type SaveMaterialRequest struct {
	Name     string          `json:"name"`
	Quantity string          `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Source   string          `json:"source,omitempty"`
	Notes    string          `json:"notes"`
}
