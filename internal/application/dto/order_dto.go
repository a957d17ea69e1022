package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de la orden.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CardRequest datos de tarjeta tal como los envía el cliente.
type CardRequest struct {
	Name   string `json:"name" validate:"required"`
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
}

// CreateOrderRequest entrada para crear una orden.
// Total lo calcula el cliente; el backend no lo valida contra los items (contrato heredado).
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total decimal.Decimal    `json:"total"`
	Card  CardRequest        `json:"card" validate:"required"`
}

// OrderItemResponse línea de la orden en respuestas.
type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse salida de una orden con sus items.
type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	Total      decimal.Decimal     `json:"total"`
	CardName   string              `json:"cardName"`
	CardNumber string              `json:"cardNumber"`
	CardExpiry string              `json:"cardExpiry"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Data []OrderResponse `json:"data"`
	Meta PageMeta        `json:"meta"`
}
