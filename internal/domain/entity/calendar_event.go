package entity

import "time"

// Tipos válidos para CalendarEvent.
const (
	EventDelivery = "delivery"
	EventMeeting  = "meeting"
	EventOther    = "other"
)

// ValidEventType indica si t es uno de los tipos del enum cerrado.
func ValidEventType(t string) bool {
	return t == EventDelivery || t == EventMeeting || t == EventOther
}

// CalendarEvent evento del calendario del taller (entrega, cita u otro).
// Date es un día calendario; la hora se ignora.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}
