package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra con sus items.
// Total lo aporta el cliente y no se recalcula contra precio×cantidad (contrato heredado).
// Los campos de tarjeta se guardan tal cual, normalizados a mayúsculas sin espacios.
type Order struct {
	ID         string
	UserID     string
	Total      decimal.Decimal
	CardName   string
	CardNumber string
	CardExpiry string
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem pertenece exclusivamente a su Order; se crea y destruye junto con ella.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
}
