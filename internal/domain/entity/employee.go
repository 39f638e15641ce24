package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// Estados válidos para Employee.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusOnLeave  = "on_leave"
	EmployeeStatusInactive = "inactive"
)

// Employee ficha de recursos humanos de un empleado de una sucursal.
// Position reutiliza el conjunto de roles (director, chef, waiter, cashier,
// delivery); la cuenta de acceso asociada, si existe, vive en User.
type Employee struct {
	ID           string
	RestaurantID string
	UserID       string // opcional: cuenta de acceso vinculada
	Name         string
	Email        string
	Phone        string
	Position     rbac.Role
	Salary       decimal.Decimal
	Status       string // active, on_leave, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
