package repository

import (
	"context"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// DishRepository puerto de persistencia para Dish. Create/Update sincronizan
// también la asociación dish_ingredients.
type DishRepository interface {
	Create(ctx context.Context, d *entity.Dish) error
	GetByID(ctx context.Context, id string) (*entity.Dish, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Dish, error)
	Update(ctx context.Context, d *entity.Dish) error
	Delete(ctx context.Context, id string) error
}

// IngredientRepository puerto de persistencia para Ingredient.
type IngredientRepository interface {
	Create(ctx context.Context, i *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Ingredient, error)
	Update(ctx context.Context, i *entity.Ingredient) error
	Delete(ctx context.Context, id string) error
}
