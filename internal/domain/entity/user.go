package entity

import (
	"time"

	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// Estados válidos para User.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa una cuenta del sistema. El personal (director, chef,
// cajero, mesero, domiciliario) queda acotado a una sucursal vía RestaurantID;
// admin y client no pertenecen a ninguna.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         rbac.Role
	RestaurantID string // vacío para admin y client
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
