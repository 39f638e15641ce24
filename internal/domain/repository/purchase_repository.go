package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para IngredientPurchase.
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.IngredientPurchase) error
	GetByID(ctx context.Context, id string) (*entity.IngredientPurchase, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.IngredientPurchase, error)
	Delete(ctx context.Context, id string) error
	// TotalByRestaurantAndRange suma TotalCost en [from, to] (para el cierre diario).
	TotalByRestaurantAndRange(ctx context.Context, restaurantID string, from, to time.Time) (decimal.Decimal, error)
}

// ReportRepository puerto de persistencia para Report.
type ReportRepository interface {
	Create(ctx context.Context, r *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	GetByRestaurantAndDate(ctx context.Context, restaurantID string, date time.Time) (*entity.Report, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Report, error)
	Delete(ctx context.Context, id string) error
}
