package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/storage"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductTxRunner ejecuta un callback con un ProductRepository atado a una transacción.
type ProductTxRunner interface {
	RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// ProductUseCase ciclo de vida de productos: coordina la fila en Postgres con
// las imágenes en el almacenamiento de objetos.
//
// Orden invariante en update/delete: nunca se borra un blob antes de que la
// fila que lo referencia esté actualizada en la DB. Un delete de blob fallido
// deja un blob huérfano (se registra y se sigue); lo contrario dejaría una
// referencia colgante.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner ProductTxRunner
	store    storage.ObjectStorage
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner ProductTxRunner, store storage.ObjectStorage, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, store: store, log: log}
}

// Create crea un producto. Requiere al menos una imagen; las sube en secuencia
// ANTES de insertar la fila, así un fallo de subida nunca deja un producto sin
// sus imágenes.
func (uc *ProductUseCase) Create(ctx context.Context, callerID string, in dto.CreateProductRequest, images []dto.ImageFile) (*dto.ProductResponse, error) {
	if len(images) == 0 {
		return nil, domain.ErrNoImages
	}
	if err := validateName(in.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	urls, err := uc.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Images:      urls,
		IsActive:    true,
		CreatedByID: callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El set final de imágenes es
// (actuales − imagesToRemove) ∪ subidas; las subidas preceden a cualquier
// mutación y los borrados de blobs se emiten solo después de que la fila
// quedó persistida.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, images []dto.ImageFile) (*dto.ProductResponse, error) {
	if in.IsEmpty() && len(images) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	if isNullLiteral(in.Name) || isNullLiteral(in.Description) || isNullLiteral(in.Price) || isNullLiteral(in.ImagesToRemove) {
		return nil, domain.ErrNullField
	}

	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if in.Name != nil {
		if err := validateName(*in.Name); err != nil {
			return nil, err
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return nil, err
		}
		product.Description = *in.Description
	}
	if in.Price != nil {
		price, err := decimal.NewFromString(*in.Price)
		if err != nil || !price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = price
	}

	toRemove, err := parseImagesToRemove(in.ImagesToRemove)
	if err != nil {
		return nil, err
	}

	// Subidas primero: si fallan, no se ha mutado nada todavía.
	uploaded, err := uc.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	removeSet := make(map[string]bool, len(toRemove))
	for _, u := range toRemove {
		removeSet[u] = true
	}
	final := make([]string, 0, len(product.Images)+len(uploaded))
	for _, u := range product.Images {
		if !removeSet[u] {
			final = append(final, u)
		}
	}
	final = append(final, uploaded...)
	if len(final) == 0 {
		return nil, domain.ErrNoImages
	}
	product.Images = final
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	// La fila ya no referencia estos blobs: limpieza best-effort, en paralelo,
	// desacoplada del request (el ctx del request puede cancelarse al responder).
	uc.deleteBlobs(toRemove)

	return toProductResponse(product), nil
}

// Deactivate marca el producto como inactivo (soft delete). Idempotente: sobre
// un producto ya inactivo es un no-op exitoso. No toca imágenes ni storage.
func (uc *ProductUseCase) Deactivate(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if product.IsActive {
		if err := uc.repo.Deactivate(id); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		product.IsActive = false
	}
	return toProductResponse(product), nil
}

// Delete elimina físicamente el producto (ruta legacy, reemplazada por Deactivate).
// Borra la fila en transacción y solo si la transacción confirma emite los
// borrados best-effort de sus imágenes; un fallo en esa limpieza no la resucita.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	var images []string
	err := uc.txRunner.RunProducts(ctx, func(products repository.ProductRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		images = product.Images
		return products.Delete(id)
	})
	if err != nil {
		if err == domain.ErrProductNotFound {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	uc.deleteBlobs(images)
	return nil
}

// GetByID obtiene un producto por ID, activo o no.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación. onlyActive=true para el catálogo
// público; los listados de admin ven la tabla completa.
func (uc *ProductUseCase) List(onlyActive bool, page dto.PageRequest) (*dto.ProductListResponse, error) {
	total, err := uc.repo.Count(onlyActive)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	list, err := uc.repo.List(onlyActive, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data: items,
		Meta: dto.NewPageMeta(total, page.Page, page.Limit),
	}, nil
}

// uploadAll sube las imágenes en secuencia y devuelve las URLs durables.
// Cualquier fallo aborta la operación completa; no hay retry.
func (uc *ProductUseCase) uploadAll(ctx context.Context, images []dto.ImageFile) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		u, err := uc.store.Upload(ctx, img.Filename, img.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrImageUpload, img.Filename, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// deleteBlobs emite borrados concurrentes y best-effort. Los fallos se
// registran para reconciliación posterior y se tragan: la mutación principal
// de DB ya confirmó y no se revierte por un blob huérfano.
func (uc *ProductUseCase) deleteBlobs(urls []string) {
	for _, u := range urls {
		go func(imageURL string) {
			if err := uc.store.Delete(context.Background(), imageURL); err != nil {
				uc.log.Warn().Err(err).Str("image_url", imageURL).Msg("borrado de imagen falló; blob huérfano pendiente de reconciliación")
			}
		}(u)
	}
}

func parseImagesToRemove(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(*raw), &urls); err != nil {
		return nil, domain.ErrInvalidImagesList
	}
	for _, u := range urls {
		parsed, err := url.Parse(u)
		if err != nil || !parsed.IsAbs() || parsed.Path == "" || parsed.Path == "/" {
			return nil, domain.ErrInvalidImageURL
		}
	}
	return urls, nil
}

func validateName(name string) error {
	if len(name) < 3 || len(name) > 200 {
		return domain.ErrInvalidInput
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) < 10 {
		return domain.ErrInvalidInput
	}
	return nil
}

func isNullLiteral(p *string) bool {
	return p != nil && *p == "null"
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
		IsActive:    p.IsActive,
		CreatedByID: p.CreatedByID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
