package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GarmentMaterial línea de material dentro de una prenda (copia al momento del alta).
type GarmentMaterial struct {
	MaterialName  string          `json:"materialName"`
	Cost          decimal.Decimal `json:"cost"`
	QuantityLabel string          `json:"quantityLabel"` // texto libre: "2 m", "1 yarda"
}

// Garment representa una prenda del catálogo con sus costos de confección.
// Profit es derivado, nunca fuente de verdad; registros históricos pueden traerlo persistido.
type Garment struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Size          string            `json:"size"`
	Price         decimal.Decimal   `json:"price"`
	LaborCost     decimal.Decimal   `json:"laborCost"`
	TransportCost decimal.Decimal   `json:"transportCost"`
	Materials     []GarmentMaterial `json:"materials"`
	OwnerID       string            `json:"ownerId"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// MaterialsCost suma el costo de todos los materiales de la prenda.
func (g *Garment) MaterialsCost() decimal.Decimal {
	total := decimal.Zero
	for _, m := range g.Materials {
		total = total.Add(m.Cost)
	}
	return total
}

// Profit ganancia derivada: price - (laborCost + transportCost + materiales).
func (g *Garment) Profit() decimal.Decimal {
	costs := g.LaborCost.Add(g.TransportCost).Add(g.MaterialsCost())
	return g.Price.Sub(costs)
}
