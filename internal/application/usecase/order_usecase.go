package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// OrderTxRunner ejecuta callbacks con un OrderRepository atado a una transacción.
// RunSnapshot usa aislamiento repeatable read para que count y fetch de la
// paginación vean el mismo snapshot pese a escrituras concurrentes.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(orders repository.OrderRepository) error) error
	RunSnapshot(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// OrderUseCase ciclo de vida de órdenes: creación atómica de orden + items y
// listados paginados.
type OrderUseCase struct {
	txRunner OrderTxRunner
	repo     repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner OrderTxRunner, repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, repo: repo}
}

// Create crea la orden y sus N items en una sola transacción: o quedan la fila
// de la orden y todos los items, o ninguno. Los campos de tarjeta se guardan
// normalizados (trim + mayúsculas) y sin enmascarar; Total viene del cliente y
// no se valida contra los items (contrato heredado, brecha conocida).
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	if !in.Total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Card.Name == "" || in.Card.Number == "" || in.Card.Expiry == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		Total:      in.Total,
		CardName:   normalizeCardField(in.Card.Name),
		CardNumber: normalizeCardField(in.Card.Number),
		CardExpiry: normalizeCardField(in.Card.Expiry),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	err := uc.txRunner.RunOrders(ctx, func(orders repository.OrderRepository) error {
		return orders.Create(order)
	})
	if err != nil {
		// El caller nunca recibe un id parcial: la transacción revirtió todo.
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderCreation, err)
	}
	return toOrderResponse(order), nil
}

// FindAll lista todas las órdenes paginadas (vista admin).
func (uc *OrderUseCase) FindAll(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error) {
	return uc.list(ctx, "", page)
}

// FindByUser lista las órdenes de un usuario paginadas.
func (uc *OrderUseCase) FindByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	return uc.list(ctx, userID, page)
}

// list ejecuta count + fetch dentro de una misma transacción snapshot para que
// meta.total y data reflejen el mismo estado. Orden: created_at descendente.
func (uc *OrderUseCase) list(ctx context.Context, userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	var total int
	var list []*entity.Order
	err := uc.txRunner.RunSnapshot(ctx, func(orders repository.OrderRepository) error {
		var err error
		total, err = orders.Count(userID)
		if err != nil {
			return err
		}
		list, err = orders.List(userID, page.Limit, page.Offset())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Data: items,
		Meta: dto.NewPageMeta(total, page.Page, page.Limit),
	}, nil
}

// FindOne obtiene una orden con sus items.
func (uc *OrderUseCase) FindOne(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return toOrderResponse(order), nil
}

func normalizeCardField(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		Total:      o.Total,
		CardName:   o.CardName,
		CardNumber: o.CardNumber,
		CardExpiry: o.CardExpiry,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
