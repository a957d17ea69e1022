package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus items.
// Create inserta la orden y todos sus items; la atomicidad la garantiza el
// TxRunner que construye el repo sobre una transacción.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(userID string, limit, offset int) ([]*entity.Order, error)
	Count(userID string) (int, error)
}
