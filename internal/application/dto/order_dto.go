package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest una línea del pedido.
type CreateOrderItemRequest struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest un pedido nuevo de un cliente.
type CreateOrderRequest struct {
	RestaurantID string                   `json:"restaurant_id"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// OrderItemResponse línea con nombre y precio congelados al ordenar.
type OrderItemResponse struct {
	DishID   string          `json:"dish_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string              `json:"id"`
	RestaurantID string              `json:"restaurant_id"`
	CustomerID   string              `json:"customer_id"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// UpdateOrderStatusRequest transición de estado (cajero/cocina).
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
