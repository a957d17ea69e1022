package entity

import "time"

// Roles válidos para User. Igualdad exacta, sin jerarquía:
// ADMIN no satisface una ruta restringida a CUSTOMER ni al revés.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, CUSTOMER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
