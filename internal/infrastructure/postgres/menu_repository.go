package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación de MenuRepository sobre PostgreSQL. Los packs del
// menú viven en daily_menu_items y se reemplazan completos en cada Update.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository construye el adaptador de persistencia de menús del día.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// Create persiste el menú y sus packs. La restricción UNIQUE
// (restaurant_id, menu_date) se traduce a ErrMenuAlreadyExists.
func (r *MenuRepo) Create(ctx context.Context, m *entity.DailyMenu) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO daily_menus (id, restaurant_id, menu_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.Exec(ctx, query, m.ID, m.RestaurantID, m.MenuDate, m.Status, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMenuAlreadyExists
		}
		return fmt.Errorf("insert menu: %w", err)
	}
	if err := insertMenuItems(ctx, tx, m.ID, m.Items); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertMenuItems(ctx context.Context, tx pgx.Tx, menuID string, items []entity.DailyMenuItem) error {
	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO daily_menu_items (id, menu_id, name, price, dish_ids, extras) VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, menuID, it.Name, it.Price, it.DishIDs, it.Extras)
		if err != nil {
			return fmt.Errorf("insert menu item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un menú con sus packs; (nil, nil) si no existe.
func (r *MenuRepo) GetByID(ctx context.Context, id string) (*entity.DailyMenu, error) {
	return r.queryOne(ctx,
		`SELECT id, restaurant_id, menu_date, status, created_at, updated_at FROM daily_menus WHERE id = $1`, id)
}

// GetByRestaurantAndDate obtiene el menú de una sucursal para una fecha.
// Solo cuenta la fecha; la hora del argumento se descarta.
func (r *MenuRepo) GetByRestaurantAndDate(ctx context.Context, restaurantID string, date time.Time) (*entity.DailyMenu, error) {
	return r.queryOne(ctx,
		`SELECT id, restaurant_id, menu_date, status, created_at, updated_at
		 FROM daily_menus WHERE restaurant_id = $1 AND menu_date = $2::date`,
		restaurantID, date.Format("2006-01-02"))
}

func (r *MenuRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.DailyMenu, error) {
	var m entity.DailyMenu
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.RestaurantID, &m.MenuDate, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	if m.Items, err = r.menuItems(ctx, m.ID); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepo) menuItems(ctx context.Context, menuID string) ([]entity.DailyMenuItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, menu_id, name, price, dish_ids, extras FROM daily_menu_items WHERE menu_id = $1 ORDER BY name`, menuID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var items []entity.DailyMenuItem
	for rows.Next() {
		var it entity.DailyMenuItem
		if err := rows.Scan(&it.ID, &it.MenuID, &it.Name, &it.Price, &it.DishIDs, &it.Extras); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByRestaurant lista menús de una sucursal, más reciente primero.
func (r *MenuRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.DailyMenu, error) {
	query := `
		SELECT id, restaurant_id, menu_date, status, created_at, updated_at
		FROM daily_menus WHERE restaurant_id = $1 ORDER BY menu_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyMenu
	for rows.Next() {
		var m entity.DailyMenu
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.MenuDate, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range list {
		if m.Items, err = r.menuItems(ctx, m.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza el menú y reemplaza sus packs completos.
func (r *MenuRepo) Update(ctx context.Context, m *entity.DailyMenu) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE daily_menus SET status = $2, updated_at = $3 WHERE id = $1`,
		m.ID, m.Status, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM daily_menu_items WHERE menu_id = $1`, m.ID); err != nil {
		return fmt.Errorf("clear menu items: %w", err)
	}
	if err := insertMenuItems(ctx, tx, m.ID, m.Items); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete elimina el menú; los packs caen en cascada.
func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM daily_menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}
