package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación de RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository construye el adaptador de persistencia de sucursales.
func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepo {
	return &RestaurantRepo{pool: pool}
}

// Create persiste una sucursal nueva.
func (r *RestaurantRepo) Create(ctx context.Context, rest *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, address, city, phone, email, status, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		rest.ID, rest.Name, rest.Address, rest.City, rest.Phone, rest.Email,
		rest.Status, rest.Image, rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal; (nil, nil) si no existe.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	query := `
		SELECT id, name, address, city, phone, email, status, image, created_at, updated_at
		FROM restaurants WHERE id = $1`
	var rest entity.Restaurant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rest.ID, &rest.Name, &rest.Address, &rest.City, &rest.Phone, &rest.Email,
		&rest.Status, &rest.Image, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

// List lista sucursales con paginación.
func (r *RestaurantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, address, city, phone, email, status, image, created_at, updated_at
		FROM restaurants ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.City, &rest.Phone,
			&rest.Email, &rest.Status, &rest.Image, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &rest)
	}
	return list, rows.Err()
}

// Update actualiza una sucursal.
func (r *RestaurantRepo) Update(ctx context.Context, rest *entity.Restaurant) error {
	query := `
		UPDATE restaurants SET name = $2, address = $3, city = $4, phone = $5,
			email = $6, status = $7, image = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		rest.ID, rest.Name, rest.Address, rest.City, rest.Phone, rest.Email,
		rest.Status, rest.Image, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// Delete elimina una sucursal y, en cascada, su personal, platos y menús.
func (r *RestaurantRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}
