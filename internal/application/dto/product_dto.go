package dto

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// ImageFile imagen binaria recibida por multipart, lista para subir al almacenamiento.
type ImageFile struct {
	Filename string
	Content  io.Reader
}

// CreateProductRequest entrada para crear un producto (las imágenes viajan aparte).
type CreateProductRequest struct {
	Name        string          `form:"name" validate:"required,min=3,max=200"`
	Description string          `form:"description" validate:"required,min=10"`
	Price       decimal.Decimal `form:"price"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Los campos llegan como strings crudos del form multipart; los punteros
// distinguen "campo ausente" de "campo enviado". El caso de uso parsea y
// valida (incluido el literal null, que se rechaza).
type UpdateProductRequest struct {
	Name           *string `form:"name"`
	Description    *string `form:"description"`
	Price          *string `form:"price"`
	ImagesToRemove *string `form:"imagesToRemove"` // JSON array de URLs a quitar
}

// IsEmpty indica si la actualización no trae ningún campo.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.ImagesToRemove == nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	IsActive    bool            `json:"isActive"`
	CreatedByID string          `json:"createdById"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	Meta PageMeta          `json:"meta"`
}
