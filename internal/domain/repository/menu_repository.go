package repository

import (
	"context"
	"time"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// MenuRepository puerto de persistencia para DailyMenu y sus packs.
// GetByRestaurantAndDate compara solo la fecha (la hora se descarta).
type MenuRepository interface {
	Create(ctx context.Context, m *entity.DailyMenu) error
	GetByID(ctx context.Context, id string) (*entity.DailyMenu, error)
	GetByRestaurantAndDate(ctx context.Context, restaurantID string, date time.Time) (*entity.DailyMenu, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.DailyMenu, error)
	Update(ctx context.Context, m *entity.DailyMenu) error
	Delete(ctx context.Context, id string) error
}
