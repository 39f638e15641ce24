package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para DailyMenu.
const (
	MenuStatusDraft     = "draft"
	MenuStatusPublished = "published"
)

// DailyMenu el menú del día de una sucursal. Una sucursal tiene como máximo
// un menú por fecha.
type DailyMenu struct {
	ID           string
	RestaurantID string
	MenuDate     time.Time // solo fecha; la hora se descarta al persistir
	Status       string    // draft, published
	Items        []DailyMenuItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DailyMenuItem un pack del menú del día: combinación de platos más extras
// (pan, jugo, sopa...) a un precio cerrado.
type DailyMenuItem struct {
	ID      string
	MenuID  string
	Name    string
	Price   decimal.Decimal
	DishIDs []string
	Extras  []string
}
