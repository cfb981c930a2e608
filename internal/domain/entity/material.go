package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material ítem de la lista de compras. Quantity admite número o texto libre
// ("3 m", "1/2 yarda"), por eso se guarda como string.
type Material struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  string          `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Source    string          `json:"source,omitempty"` // dónde se consigue
	Purchased bool            `json:"purchased"`
	Notes     string          `json:"notes"`
	OwnerID   string          `json:"ownerId"`
	CreatedAt time.Time       `json:"createdAt"`
}
