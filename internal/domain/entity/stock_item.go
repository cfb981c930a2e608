package entity

import "time"

// StockItem existencia de una prenda ya confeccionada. GarmentName es snapshot
// desnormalizado del nombre de la prenda al momento del alta.
type StockItem struct {
	ID          string    `json:"id"`
	GarmentID   string    `json:"garmentId"`
	GarmentName string    `json:"garmentName"`
	Size        string    `json:"size"`
	Quantity    int       `json:"quantity"` // entero >= 0
	Color       string    `json:"color,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}
