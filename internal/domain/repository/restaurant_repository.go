package repository

import (
	"context"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// RestaurantRepository puerto de persistencia para Restaurant.
type RestaurantRepository interface {
	Create(ctx context.Context, r *entity.Restaurant) error
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error)
	Update(ctx context.Context, r *entity.Restaurant) error
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
