package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GarmentMaterialRequest línea de material de una prenda.
type GarmentMaterialRequest struct {
	MaterialName  string          `json:"materialName"`
	Cost          decimal.Decimal `json:"cost"`
	QuantityLabel string          `json:"quantityLabel"`
}

// SaveGarmentRequest alta de prenda.
type SaveGarmentRequest struct {
	Name          string                   `json:"name"`
	Size          string                   `json:"size"`
	Price         decimal.Decimal          `json:"price"`
	LaborCost     decimal.Decimal          `json:"laborCost"`
	TransportCost decimal.Decimal          `json:"transportCost"`
	Materials     []GarmentMaterialRequest `json:"materials"`
}

// GarmentResponse prenda con su ganancia derivada.
type GarmentResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Size          string                   `json:"size"`
	Price         decimal.Decimal          `json:"price"`
	LaborCost     decimal.Decimal          `json:"laborCost"`
	TransportCost decimal.Decimal          `json:"transportCost"`
	Materials     []GarmentMaterialRequest `json:"materials"`
	Profit        decimal.Decimal          `json:"profit"`
	OwnerID       string                   `json:"ownerId"`
	CreatedAt     time.Time                `json:"createdAt"`
}
