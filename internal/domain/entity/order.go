package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	StatusPendiente  = "Pendiente"
	StatusEnProceso  = "En Proceso"
	StatusFinalizado = "Finalizado"
	StatusEntregado  = "Entregado"
)

// ValidOrderStatus indica si s es uno de los estados del enum cerrado.
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPendiente, StatusEnProceso, StatusFinalizado, StatusEntregado:
		return true
	}
	return false
}

// Order pedido de una clienta. ClientName y GarmentName son copias tomadas al
// crear el pedido (snapshot), no referencias vivas: editar la prenda después
// no actualiza el pedido.
type Order struct {
	ID              string          `json:"id"`
	ClientName      string          `json:"clientName"`
	GarmentName     string          `json:"garmentName"`
	GarmentID       string          `json:"garmentId,omitempty"` // referencia opcional hacia la prenda original
	Size            string          `json:"size"`
	Price           decimal.Decimal `json:"price"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Status          string          `json:"status"`
	AppointmentDate *time.Time      `json:"appointmentDate,omitempty"`
	DeliveryDate    *time.Time      `json:"deliveryDate,omitempty"`
	OwnerID         string          `json:"ownerId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Balance saldo pendiente derivado: price - paidAmount. Puede ser negativo
// solo por error de datos; la agregación del dashboard lo trunca en cero.
func (o *Order) Balance() decimal.Decimal {
	return o.Price.Sub(o.PaidAmount)
}
