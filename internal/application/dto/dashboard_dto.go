package dto

import "github.com/shopspring/decimal"

// DashboardSummary los números que muestra el tablero de inicio.
type DashboardSummary struct {
	Garments       int             `json:"garments"`
	Clients        int             `json:"clients"`
	OrdersByStatus map[string]int  `json:"ordersByStatus"`
	PendingBalance decimal.Decimal `json:"pendingBalance"` // truncado en cero por pedido
	StockUnits     int             `json:"stockUnits"`
}
