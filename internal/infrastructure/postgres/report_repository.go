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

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación de ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de persistencia de cierres diarios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Create persiste un cierre diario. La restricción UNIQUE
// (restaurant_id, report_date) se traduce a ErrConflict.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	query := `
		INSERT INTO reports (id, restaurant_id, report_date, total_sales, total_orders, total_expenses, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		rep.ID, rep.RestaurantID, rep.ReportDate.Format("2006-01-02"),
		rep.TotalSales, rep.TotalOrders, rep.TotalExpenses, rep.Notes, rep.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un cierre; (nil, nil) si no existe.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	return r.queryOne(ctx,
		`SELECT id, restaurant_id, report_date, total_sales, total_orders, total_expenses, notes, created_at
		 FROM reports WHERE id = $1`, id)
}

// GetByRestaurantAndDate obtiene el cierre de una sucursal para una fecha.
func (r *ReportRepo) GetByRestaurantAndDate(ctx context.Context, restaurantID string, date time.Time) (*entity.Report, error) {
	return r.queryOne(ctx,
		`SELECT id, restaurant_id, report_date, total_sales, total_orders, total_expenses, notes, created_at
		 FROM reports WHERE restaurant_id = $1 AND report_date = $2::date`,
		restaurantID, date.Format("2006-01-02"))
}

func (r *ReportRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.Report, error) {
	var rep entity.Report
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&rep.ID, &rep.RestaurantID, &rep.ReportDate,
		&rep.TotalSales, &rep.TotalOrders, &rep.TotalExpenses, &rep.Notes, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// ListByRestaurant lista cierres de una sucursal, más reciente primero.
func (r *ReportRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Report, error) {
	query := `
		SELECT id, restaurant_id, report_date, total_sales, total_orders, total_expenses, notes, created_at
		FROM reports WHERE restaurant_id = $1 ORDER BY report_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.RestaurantID, &rep.ReportDate,
			&rep.TotalSales, &rep.TotalOrders, &rep.TotalExpenses, &rep.Notes, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Delete elimina un cierre.
func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
