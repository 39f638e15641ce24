package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

var _ repository.DishRepository = (*DishRepo)(nil)

// DishRepo implementación de DishRepository sobre PostgreSQL. La asociación
// plato↔ingredientes vive en dish_ingredients y se sincroniza en la misma
// transacción que el plato.
type DishRepo struct {
	pool *pgxpool.Pool
}

// NewDishRepository construye el adaptador de persistencia de platos.
func NewDishRepository(pool *pgxpool.Pool) *DishRepo {
	return &DishRepo{pool: pool}
}

// Create persiste el plato y sus ingredientes asociados.
func (r *DishRepo) Create(ctx context.Context, d *entity.Dish) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO dishes (id, restaurant_id, name, description, category, price, image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(ctx, query,
		d.ID, d.RestaurantID, d.Name, d.Description, d.Category, d.Price,
		d.Image, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}
	if err := syncDishIngredients(ctx, tx, d.ID, d.IngredientIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByID obtiene un plato con sus ingredientes; (nil, nil) si no existe.
func (r *DishRepo) GetByID(ctx context.Context, id string) (*entity.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, description, category, price, image, status, created_at, updated_at
		FROM dishes WHERE id = $1`
	var d entity.Dish
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Category, &d.Price,
		&d.Image, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dish: %w", err)
	}
	d.IngredientIDs, err = r.ingredientIDs(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepo) ingredientIDs(ctx context.Context, dishID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ingredient_id FROM dish_ingredients WHERE dish_id = $1 ORDER BY ingredient_id`, dishID)
	if err != nil {
		return nil, fmt.Errorf("list dish ingredients: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan dish ingredient: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// List lista platos de toda la cadena.
func (r *DishRepo) List(ctx context.Context, limit, offset int) ([]*entity.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, description, category, price, image, status, created_at, updated_at
		FROM dishes ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryMany(ctx, query, limit, offset)
}

// ListByRestaurant lista los platos del catálogo de una sucursal.
func (r *DishRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, description, category, price, image, status, created_at, updated_at
		FROM dishes WHERE restaurant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryMany(ctx, query, restaurantID, limit, offset)
}

func (r *DishRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Dish, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dish
	for rows.Next() {
		var d entity.Dish
		if err := rows.Scan(&d.ID, &d.RestaurantID, &d.Name, &d.Description, &d.Category,
			&d.Price, &d.Image, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		if d.IngredientIDs, err = r.ingredientIDs(ctx, d.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza el plato y reemplaza su asociación de ingredientes.
func (r *DishRepo) Update(ctx context.Context, d *entity.Dish) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE dishes SET name = $2, description = $3, category = $4, price = $5,
			image = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		d.ID, d.Name, d.Description, d.Category, d.Price, d.Image, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update dish: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM dish_ingredients WHERE dish_id = $1`, d.ID); err != nil {
		return fmt.Errorf("clear dish ingredients: %w", err)
	}
	if err := syncDishIngredients(ctx, tx, d.ID, d.IngredientIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func syncDishIngredients(ctx context.Context, tx pgx.Tx, dishID string, ingredientIDs []string) error {
	for _, ingID := range ingredientIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO dish_ingredients (dish_id, ingredient_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			dishID, ingID)
		if err != nil {
			return fmt.Errorf("insert dish ingredient: %w", err)
		}
	}
	return nil
}

// Delete elimina el plato; dish_ingredients cae en cascada.
func (r *DishRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	return nil
}
