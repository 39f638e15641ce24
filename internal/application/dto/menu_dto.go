package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePackRequest un pack del formulario de menú: platos y extras en
// multi-select (toggle idempotente en la pantalla).
type CreatePackRequest struct {
	Name   string   `json:"name"`
	Price  string   `json:"price"`
	Dishes []string `json:"dishes"`
	Extras []string `json:"extras"`
}

// CreateMenuRequest alta del menú del día de una sucursal.
type CreateMenuRequest struct {
	RestaurantID string              `json:"restaurant_id"`
	MenuDate     string              `json:"menu_date"` // YYYY-MM-DD
	Packs        []CreatePackRequest `json:"packs"`
}

// PackResponse un pack del menú.
type PackResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Dishes []string        `json:"dishes"`
	Extras []string        `json:"extras"`
}

// MenuResponse salida del menú del día.
type MenuResponse struct {
	ID           string         `json:"id"`
	RestaurantID string         `json:"restaurant_id"`
	MenuDate     string         `json:"menu_date"`
	Status       string         `json:"status"`
	Packs        []PackResponse `json:"packs"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// MenuListResponse listado paginado.
type MenuListResponse struct {
	Items []MenuResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
