package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateResponse tasa de cambio vigente. Stale indica que el último fetch falló
// y el valor viene del caché vencido (cero = tasa desconocida).
type RateResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Stale     bool            `json:"stale"`
	Display   string          `json:"display"` // formato es-VE, ej. "Bs. 36,42"
}
