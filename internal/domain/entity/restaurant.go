package entity

import "time"

// Estados válidos para Restaurant.
const (
	RestaurantStatusOpen   = "open"
	RestaurantStatusClosed = "closed"
)

// Restaurant una sucursal de la cadena.
type Restaurant struct {
	ID        string
	Name      string
	Address   string
	City      string
	Phone     string
	Email     string
	Status    string // open, closed
	Image     []byte // imagen en memoria adjunta al registro (no se sube a un CDN)
	CreatedAt time.Time
	UpdatedAt time.Time
}
