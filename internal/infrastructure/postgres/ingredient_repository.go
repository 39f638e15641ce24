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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL.
type IngredientRepo struct {
	pool *pgxpool.Pool
}

// NewIngredientRepository construye el adaptador de persistencia de insumos.
func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepo {
	return &IngredientRepo{pool: pool}
}

// Create persiste un insumo nuevo.
func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, unit, stock, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query, i.ID, i.Name, i.Unit, i.Stock, i.Status, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo; (nil, nil) si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	query := `SELECT id, name, unit, stock, status, created_at, updated_at FROM ingredients WHERE id = $1`
	var i entity.Ingredient
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Unit, &i.Stock, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &i, nil
}

// List lista insumos ordenados por nombre.
func (r *IngredientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT id, name, unit, stock, status, created_at, updated_at FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Unit, &i.Stock, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un insumo (incluido el stock tras una compra).
func (r *IngredientRepo) Update(ctx context.Context, i *entity.Ingredient) error {
	query := `UPDATE ingredients SET name = $2, unit = $3, stock = $4, status = $5, updated_at = $6 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, i.ID, i.Name, i.Unit, i.Stock, i.Status, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// Delete elimina un insumo sin compras asociadas.
func (r *IngredientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}
