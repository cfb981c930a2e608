package dto

// SaveStockItemRequest alta de existencia de una prenda confeccionada.
type SaveStockItemRequest struct {
	GarmentID   string `json:"garmentId"`
	GarmentName string `json:"garmentName"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	Color       string `json:"color,omitempty"`
}
