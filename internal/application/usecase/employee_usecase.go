package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	appform "github.com/jhoicas/feedme-api/internal/application/form"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para fichas de RRHH.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create valida el formulario de empleado/director y persiste.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, appform.Errors, error) {
	errs := appform.EmployeeSchema().Validate(appform.Values{
		"name":     in.Name,
		"email":    in.Email,
		"phone":    in.Phone,
		"position": in.Position,
		"salary":   in.Salary,
	})
	position, ok := rbac.Parse(in.Position)
	if !ok || position == rbac.RoleAdmin || position == rbac.RoleClient {
		if errs == nil {
			errs = appform.Errors{}
		}
		errs["position"] = "Cargo no reconocido"
	}
	if in.RestaurantID == "" {
		if errs == nil {
			errs = appform.Errors{}
		}
		errs["restaurant_id"] = "Sucursal es obligatoria"
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	salary, err := appform.ParsePrice(in.Salary)
	if err != nil {
		return nil, appform.Errors{"salary": "Salario debe ser un valor válido"}, nil
	}

	now := time.Now()
	e := &entity.Employee{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Position:     position,
		Salary:       salary,
		Status:       entity.EmployeeStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, nil, err
	}
	return toEmployeeResponse(e), nil, nil
}

// GetByID obtiene una ficha; ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// Update edición parcial de la ficha.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if in.Position != nil {
		position, ok := rbac.Parse(*in.Position)
		if !ok || position == rbac.RoleAdmin || position == rbac.RoleClient {
			return nil, domain.ErrInvalidInput
		}
		e.Position = position
	}
	if in.Salary != nil {
		salary, err := appform.ParsePrice(*in.Salary)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		e.Salary = salary
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista toda la cadena (vista admin/grh).
func (uc *EmployeeUseCase) List(ctx context.Context, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toEmployeeList(list, limit, offset), nil
}

// ListByRestaurant lista la sucursal (vista director).
func (uc *EmployeeUseCase) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toEmployeeList(list, limit, offset), nil
}

// Delete elimina la ficha.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toEmployeeList(list []*entity.Employee, limit, offset int) *dto.EmployeeListResponse {
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		RestaurantID: e.RestaurantID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     string(e.Position),
		Salary:       e.Salary,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
