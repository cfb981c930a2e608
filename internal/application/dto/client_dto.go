package dto

// SaveClientRequest alta de clienta.
type SaveClientRequest struct {
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Notes        string            `json:"notes"`
	Measurements map[string]string `json:"measurements,omitempty"`
}
