package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository construye el adaptador de persistencia de compras.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

// Create persiste una compra de insumos.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.IngredientPurchase) error {
	query := `
		INSERT INTO ingredient_purchases (id, restaurant_id, ingredient_id, supplier, quantity, unit_cost, total_cost, purchased_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.RestaurantID, p.IngredientID, p.Supplier,
		p.Quantity, p.UnitCost, p.TotalCost, p.PurchasedAt, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra; (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.IngredientPurchase, error) {
	query := `
		SELECT id, restaurant_id, ingredient_id, supplier, quantity, unit_cost, total_cost, purchased_at, created_at
		FROM ingredient_purchases WHERE id = $1`
	var p entity.IngredientPurchase
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.RestaurantID, &p.IngredientID, &p.Supplier,
		&p.Quantity, &p.UnitCost, &p.TotalCost, &p.PurchasedAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// ListByRestaurant lista compras de una sucursal, más reciente primero.
func (r *PurchaseRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.IngredientPurchase, error) {
	query := `
		SELECT id, restaurant_id, ingredient_id, supplier, quantity, unit_cost, total_cost, purchased_at, created_at
		FROM ingredient_purchases WHERE restaurant_id = $1 ORDER BY purchased_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.IngredientPurchase
	for rows.Next() {
		var p entity.IngredientPurchase
		if err := rows.Scan(&p.ID, &p.RestaurantID, &p.IngredientID, &p.Supplier,
			&p.Quantity, &p.UnitCost, &p.TotalCost, &p.PurchasedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una compra.
func (r *PurchaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ingredient_purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// TotalByRestaurantAndRange suma el gasto en insumos de una sucursal en [from, to].
func (r *PurchaseRepo) TotalByRestaurantAndRange(ctx context.Context, restaurantID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_cost), 0)
		FROM ingredient_purchases
		WHERE restaurant_id = $1 AND purchased_at >= $2 AND purchased_at <= $3`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, restaurantID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum purchases: %w", err)
	}
	return total, nil
}
