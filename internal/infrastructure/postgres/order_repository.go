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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL. Las líneas
// viven en order_items y son inmutables después de Create.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste el pedido y sus líneas en una transacción.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, restaurant_id, customer_id, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.Exec(ctx, query,
		o.ID, o.RestaurantID, o.CustomerID, o.Total, o.Status, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, it := range o.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, dish_id, name, quantity, price) VALUES ($1, $2, $3, $4, $5)`,
			o.ID, it.DishID, it.Name, it.Quantity, it.Price)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// GetByID obtiene un pedido con sus líneas; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT id, restaurant_id, customer_id, total, status, created_at, updated_at FROM orders WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.RestaurantID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.Items, err = r.orderItems(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) orderItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT dish_id, name, quantity, price FROM order_items WHERE order_id = $1 ORDER BY name`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.DishID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByRestaurant lista pedidos de una sucursal, más reciente primero.
func (r *OrderRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, restaurant_id, customer_id, total, status, created_at, updated_at
		FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(ctx, query, restaurantID, limit, offset)
}

// ListByCustomer lista el histórico de pedidos de un cliente.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, restaurant_id, customer_id, total, status, created_at, updated_at
		FROM orders WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(ctx, query, customerID, limit, offset)
}

func (r *OrderRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.CustomerID, &o.Total,
			&o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.Items, err = r.orderItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// UpdateStatus cambia el estado de un pedido. El use case valida la transición.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// SalesByRestaurantAndRange total vendido y número de pedidos entregados en [from, to].
func (r *OrderRepo) SalesByRestaurantAndRange(ctx context.Context, restaurantID string, from, to time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE restaurant_id = $1 AND status = $2 AND created_at >= $3 AND created_at <= $4`
	var total decimal.Decimal
	var count int
	err := r.pool.QueryRow(ctx, query, restaurantID, entity.OrderStatusDelivered, from, to).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum sales: %w", err)
	}
	return total, count, nil
}
