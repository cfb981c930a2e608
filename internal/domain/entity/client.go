package entity

import "time"

// Client representa una clienta del taller, con medidas opcionales.
type Client struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Notes        string            `json:"notes"`
	Measurements map[string]string `json:"measurements,omitempty"` // ej. "busto" -> "92 cm"
	OwnerID      string            `json:"ownerId"`
	CreatedAt    time.Time         `json:"createdAt"`
}
