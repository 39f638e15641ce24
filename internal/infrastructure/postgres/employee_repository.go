package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, restaurant_id, COALESCE(user_id::text, ''), name, email, phone, position, salary, status, created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia de empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste una ficha de empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, restaurant_id, user_id, name, email, phone, position, salary, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.RestaurantID, e.UserID, e.Name, e.Email, e.Phone,
		string(e.Position), e.Salary, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene una ficha; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e entity.Employee
	var position string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.RestaurantID, &e.UserID, &e.Name, &e.Email, &e.Phone,
		&position, &e.Salary, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	e.Position = rbac.Role(position)
	return &e, nil
}

// List lista fichas de toda la cadena.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryMany(ctx, query, limit, offset)
}

// ListByRestaurant lista las fichas de una sucursal.
func (r *EmployeeRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE restaurant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryMany(ctx, query, restaurantID, limit, offset)
}

func (r *EmployeeRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var position string
		if err := rows.Scan(&e.ID, &e.RestaurantID, &e.UserID, &e.Name, &e.Email, &e.Phone,
			&position, &e.Salary, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.Position = rbac.Role(position)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una ficha de empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET user_id = NULLIF($2, '')::uuid, name = $3, email = $4,
			phone = $5, position = $6, salary = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.UserID, e.Name, e.Email, e.Phone, string(e.Position),
		e.Salary, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina una ficha de empleado.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
