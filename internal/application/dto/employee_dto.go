package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado o director (formulario de RRHH).
type CreateEmployeeRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"` // director, chef, waiter, cashier, delivery
	Salary       string `json:"salary"`   // textual; se valida como precio
}

// UpdateEmployeeRequest edición parcial de la ficha.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Salary   *string `json:"salary"`
	Status   *string `json:"status"`
}

// EmployeeResponse salida de una ficha de empleado.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// EmployeeListResponse listado paginado.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
