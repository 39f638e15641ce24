package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order un pedido de un cliente en una sucursal.
type Order struct {
	ID           string
	RestaurantID string
	CustomerID   string
	Items        []OrderItem
	Total        decimal.Decimal
	Status       string // received, preparing, ready, delivered, cancelled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem una línea del pedido. Name y Price se copian del plato al momento
// de ordenar para que el histórico no cambie si el catálogo cambia.
type OrderItem struct {
	DishID   string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Subtotal precio de la línea (Price * Quantity).
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
