package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List con onlyActive=true alimenta el listado público; los admin ven la tabla completa.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Deactivate(id string) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Count(onlyActive bool) (int, error)
	Delete(id string) error
}
