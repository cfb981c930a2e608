package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveOrderRequest alta de pedido. GarmentID opcional: si viene, el servicio
// toma nombre y precio de la prenda como snapshot.
type SaveOrderRequest struct {
	ClientName      string          `json:"clientName"`
	GarmentName     string          `json:"garmentName"`
	GarmentID       string          `json:"garmentId,omitempty"`
	Size            string          `json:"size"`
	Price           decimal.Decimal `json:"price"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Status          string          `json:"status"`
	AppointmentDate *time.Time      `json:"appointmentDate,omitempty"`
	DeliveryDate    *time.Time      `json:"deliveryDate,omitempty"`
}

// OrderResponse pedido con su saldo derivado.
type OrderResponse struct {
	ID              string          `json:"id"`
	ClientName      string          `json:"clientName"`
	GarmentName     string          `json:"garmentName"`
	GarmentID       string          `json:"garmentId,omitempty"`
	Size            string          `json:"size"`
	Price           decimal.Decimal `json:"price"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Balance         decimal.Decimal `json:"balance"`
	Status          string          `json:"status"`
	AppointmentDate *time.Time      `json:"appointmentDate,omitempty"`
	DeliveryDate    *time.Time      `json:"deliveryDate,omitempty"`
	OwnerID         string          `json:"ownerId"`
	CreatedAt       time.Time       `json:"createdAt"`
}
