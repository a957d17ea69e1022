package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Validación y not-found se devuelven tal cual al handler; los fallos de
// persistencia/almacenamiento se envuelven para no filtrar detalle interno.
var (
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrOrderNotFound      = errors.New("orden no encontrada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmptyUpdate        = errors.New("no se proporcionaron campos para actualizar")
	ErrNullField          = errors.New("no se permiten valores nulos")
	ErrNoImages           = errors.New("se requiere al menos una imagen")
	ErrInvalidImageURL    = errors.New("URL de imagen inválida")
	ErrInvalidImagesList  = errors.New("formato inválido de imagesToRemove")
	ErrImageUpload        = errors.New("fallo al subir imagen")
	ErrOrderCreation      = errors.New("fallo al crear la orden")
	ErrPersistence        = errors.New("fallo de persistencia")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
