package dto

import "time"

// SaveEventRequest alta de evento del calendario.
type SaveEventRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
}
