package usecase

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	appform "github.com/jhoicas/feedme-api/internal/application/form"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

// RestaurantUseCase casos de uso CRUD para sucursales.
type RestaurantUseCase struct {
	repo repository.RestaurantRepository
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo}
}

// Create valida el formulario de sucursal y persiste. Devuelve los errores
// por campo si la validación bloquea el envío.
func (uc *RestaurantUseCase) Create(ctx context.Context, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, appform.Errors, error) {
	errs := appform.RestaurantSchema().Validate(appform.Values{
		"name":    in.Name,
		"address": in.Address,
		"city":    in.City,
		"phone":   in.Phone,
		"email":   in.Email,
	})
	if !errs.Valid() {
		return nil, errs, nil
	}

	var image []byte
	if in.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(in.Image)
		if err != nil {
			return nil, appform.Errors{"image": "la imagen no es base64 válido"}, nil
		}
		image = decoded
	}

	now := time.Now()
	r := &entity.Restaurant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    entity.RestaurantStatusOpen,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, nil, err
	}
	return toRestaurantResponse(r), nil, nil
}

// GetByID obtiene una sucursal; ErrNotFound si no existe.
func (uc *RestaurantUseCase) GetByID(ctx context.Context, id string) (*dto.RestaurantResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toRestaurantResponse(r), nil
}

// Update edición parcial de la sucursal.
func (uc *RestaurantUseCase) Update(ctx context.Context, id string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Address != nil {
		r.Address = *in.Address
	}
	if in.City != nil {
		r.City = *in.City
	}
	if in.Phone != nil {
		r.Phone = *in.Phone
	}
	if in.Email != nil {
		r.Email = *in.Email
	}
	if in.Status != nil {
		if *in.Status != entity.RestaurantStatusOpen && *in.Status != entity.RestaurantStatusClosed {
			return nil, domain.ErrInvalidInput
		}
		r.Status = *in.Status
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRestaurantResponse(r), nil
}

// List listado paginado de sucursales.
func (uc *RestaurantUseCase) List(ctx context.Context, limit, offset int) (*dto.RestaurantListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRestaurantResponse(r))
	}
	return &dto.RestaurantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la sucursal. El flujo de confirmación vive en el handler.
func (uc *RestaurantUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		City:      r.City,
		Phone:     r.Phone,
		Email:     r.Email,
		Status:    r.Status,
		HasImage:  len(r.Image) > 0,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
