package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDishRequest alta de plato (formulario de plato). Ingredients es el
// conjunto de ids seleccionados en el multi-select; el orden no importa.
type CreateDishRequest struct {
	RestaurantID string   `json:"restaurant_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        string   `json:"price"` // textual del formulario; se valida como precio
	Image        string   `json:"image,omitempty"`
	Ingredients  []string `json:"ingredients"`
}

// UpdateDishRequest edición parcial de plato.
type UpdateDishRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *string   `json:"price"`
	Status      *string   `json:"status"`
	Ingredients *[]string `json:"ingredients"`
}

// DishResponse salida de un plato.
type DishResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	Ingredients  []string        `json:"ingredients"`
	HasImage     bool            `json:"has_image"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DishListResponse listado paginado.
type DishListResponse struct {
	Items []DishResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateIngredientRequest alta de insumo.
type CreateIngredientRequest struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Stock string `json:"stock"`
}

// IngredientResponse salida de un insumo.
type IngredientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Stock     decimal.Decimal `json:"stock"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
