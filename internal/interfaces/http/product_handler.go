package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxProductImages tope de archivos aceptados por request multipart.
const MaxProductImages = 5

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto (admin)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Nombre (3-200)"
// @Param        description  formData  string  true   "Descripción (mín. 10)"
// @Param        price        formData  number  true   "Precio > 0"
// @Param        images       formData  file    true   "Imágenes (1-5)"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price debe ser numérico"})
	}
	in := dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
	}
	images, closeAll, err := formImages(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	defer closeAll()

	out, err := h.uc.Create(c.Context(), GetUserID(c), in, images)
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (admin)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id              path      string  true   "ID del producto"
// @Param        name            formData  string  false  "Nombre"
// @Param        description     formData  string  false  "Descripción"
// @Param        price           formData  number  false  "Precio"
// @Param        imagesToRemove  formData  string  false  "JSON array de URLs a quitar"
// @Param        images          formData  file    false  "Imágenes nuevas"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	in := dto.UpdateProductRequest{
		Name:           formValuePtr(c, "name"),
		Description:    formValuePtr(c, "description"),
		Price:          formValuePtr(c, "price"),
		ImagesToRemove: formValuePtr(c, "imagesToRemove"),
	}
	images, closeAll, err := formImages(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	defer closeAll()

	out, err := h.uc.Update(c.Context(), id, in, images)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar producto (admin, soft delete)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/deactivate [patch]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	out, err := h.uc.Deactivate(id)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto físicamente (admin, ruta legacy)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
// @Deprecated
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return productError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un UUID"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	// Catálogo público: solo productos activos.
	out, err := h.uc.List(true, page)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// productError mapea los errores del ciclo de vida de productos a status HTTP.
func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrNoImages):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_IMAGES", Message: "se requiere al menos una imagen"})
	case errors.Is(err, domain.ErrEmptyUpdate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_UPDATE", Message: "no se proporcionaron campos para actualizar"})
	case errors.Is(err, domain.ErrNullField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NULL_FIELD", Message: "no se permiten valores nulos"})
	case errors.Is(err, domain.ErrInvalidImagesList):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGES_TO_REMOVE", Message: "imagesToRemove debe ser un JSON array de URLs"})
	case errors.Is(err, domain.ErrInvalidImageURL):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE_URL", Message: "URL de imagen inválida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrImageUpload):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "IMAGE_UPLOAD_FAILED", Message: "fallo al subir imagen"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// formImages extrae los archivos "images" del form multipart.
// Devuelve también un cierre para liberar los archivos abiertos.
func formImages(c *fiber.Ctx) ([]dto.ImageFile, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Sin form multipart: ninguna imagen (el caso de uso decide si eso es válido).
		return nil, func() {}, nil
	}
	headers := form.File["images"]
	if len(headers) > MaxProductImages {
		return nil, func() {}, errors.New("demasiadas imágenes")
	}
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	images := make([]dto.ImageFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, errors.New("no se pudo leer el archivo " + fh.Filename)
		}
		opened = append(opened, f)
		images = append(images, dto.ImageFile{Filename: fh.Filename, Content: f})
	}
	return images, closeAll, nil
}

func formValuePtr(c *fiber.Ctx, key string) *string {
	values := allFormValues(c, key)
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// allFormValues devuelve los valores enviados para key, distinguiendo
// "campo ausente" de "campo enviado vacío".
func allFormValues(c *fiber.Ctx, key string) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form.Value[key]
}
