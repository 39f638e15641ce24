package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Dish.
const (
	DishStatusAvailable   = "available"
	DishStatusUnavailable = "unavailable"
)

// Dish un plato del catálogo de una sucursal. IngredientIDs es la asociación
// plato↔ingredientes (tabla dish_ingredients); el orden no importa.
type Dish struct {
	ID            string
	RestaurantID  string
	Name          string
	Description   string
	Category      string // entrada, fuerte, postre, bebida...
	Price         decimal.Decimal
	Image         []byte
	Status        string // available, unavailable
	IngredientIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ingredient insumo de cocina con existencia agregada de la cadena.
type Ingredient struct {
	ID        string
	Name      string
	Unit      string // kg, l, unidad...
	Stock     decimal.Decimal
	Status    string // available, low, out_of_stock
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados válidos para Ingredient.
const (
	IngredientStatusAvailable = "available"
	IngredientStatusLow       = "low"
	IngredientStatusOut       = "out_of_stock"
)
