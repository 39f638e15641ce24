package repository

import (
	"context"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila; ErrNotFound lo decide el use case.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
