package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// SalesByRestaurantAndRange total vendido y número de pedidos entregados en [from, to].
	SalesByRestaurantAndRange(ctx context.Context, restaurantID string, from, to time.Time) (decimal.Decimal, int, error)
}
