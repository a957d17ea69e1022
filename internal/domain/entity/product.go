package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Images guarda las URLs durables del almacenamiento de objetos, en orden.
// IsActive=false lo excluye de las lecturas públicas pero conserva la fila (soft delete).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Images      []string
	IsActive    bool
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
