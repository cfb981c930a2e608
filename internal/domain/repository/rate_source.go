package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource define el puerto hacia la fuente externa de tasa de cambio
// (promedio oficial USD -> Bs). Una sola operación, un solo número.
type RateSource interface {
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}
