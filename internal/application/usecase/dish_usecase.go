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

// DishUseCase casos de uso CRUD para platos e insumos.
type DishUseCase struct {
	dishes      repository.DishRepository
	ingredients repository.IngredientRepository
}

// NewDishUseCase construye el caso de uso.
func NewDishUseCase(dishes repository.DishRepository, ingredients repository.IngredientRepository) *DishUseCase {
	return &DishUseCase{dishes: dishes, ingredients: ingredients}
}

// Create valida el formulario de plato y persiste. La asociación de
// ingredientes llega como el conjunto de ids del multi-select; los ids se
// deduplican con el toggle de la pantalla (repetir un id lo quita).
func (uc *DishUseCase) Create(ctx context.Context, in dto.CreateDishRequest) (*dto.DishResponse, appform.Errors, error) {
	errs := appform.DishSchema().Validate(appform.Values{
		"name":        in.Name,
		"description": in.Description,
		"category":    in.Category,
		"price":       in.Price,
	})
	if in.RestaurantID == "" {
		if errs == nil {
			errs = appform.Errors{}
		}
		errs["restaurant_id"] = "Sucursal es obligatoria"
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	price, err := appform.ParsePrice(in.Price)
	if err != nil {
		return nil, appform.Errors{"price": "Precio debe ser un precio válido"}, nil
	}

	var image []byte
	if in.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(in.Image)
		if err != nil {
			return nil, appform.Errors{"image": "la imagen no es base64 válido"}, nil
		}
		image = decoded
	}

	sel := appform.NewSelection()
	for _, id := range in.Ingredients {
		sel.Toggle(id)
	}

	now := time.Now()
	d := &entity.Dish{
		ID:            uuid.New().String(),
		RestaurantID:  in.RestaurantID,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Price:         price,
		Image:         image,
		Status:        entity.DishStatusAvailable,
		IngredientIDs: sel.IDs(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.dishes.Create(ctx, d); err != nil {
		return nil, nil, err
	}
	return toDishResponse(d), nil, nil
}

// GetByID obtiene un plato; ErrNotFound si no existe.
func (uc *DishUseCase) GetByID(ctx context.Context, id string) (*dto.DishResponse, error) {
	d, err := uc.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDishResponse(d), nil
}

// Update edición parcial del plato.
func (uc *DishUseCase) Update(ctx context.Context, id string, in dto.UpdateDishRequest) (*dto.DishResponse, error) {
	d, err := uc.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.Price != nil {
		price, err := appform.ParsePrice(*in.Price)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		d.Price = price
	}
	if in.Status != nil {
		if *in.Status != entity.DishStatusAvailable && *in.Status != entity.DishStatusUnavailable {
			return nil, domain.ErrInvalidInput
		}
		d.Status = *in.Status
	}
	if in.Ingredients != nil {
		sel := appform.NewSelection()
		for _, iid := range *in.Ingredients {
			sel.Toggle(iid)
		}
		d.IngredientIDs = sel.IDs()
	}
	d.UpdatedAt = time.Now()
	if err := uc.dishes.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDishResponse(d), nil
}

// List listado de la cadena.
func (uc *DishUseCase) List(ctx context.Context, limit, offset int) (*dto.DishListResponse, error) {
	list, err := uc.dishes.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDishList(list, limit, offset), nil
}

// ListByRestaurant listado por sucursal (vista chef/customer).
func (uc *DishUseCase) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) (*dto.DishListResponse, error) {
	list, err := uc.dishes.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDishList(list, limit, offset), nil
}

// Delete elimina el plato.
func (uc *DishUseCase) Delete(ctx context.Context, id string) error {
	return uc.dishes.Delete(ctx, id)
}

// CreateIngredient alta de insumo.
func (uc *DishUseCase) CreateIngredient(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := appform.ParsePrice(in.Stock)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	i := &entity.Ingredient{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Unit:      in.Unit,
		Stock:     stock,
		Status:    entity.IngredientStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ingredients.Create(ctx, i); err != nil {
		return nil, err
	}
	return toIngredientResponse(i), nil
}

// ListIngredients listado de insumos.
func (uc *DishUseCase) ListIngredients(ctx context.Context, limit, offset int) ([]dto.IngredientResponse, error) {
	list, err := uc.ingredients.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIngredientResponse(i))
	}
	return items, nil
}

func toDishList(list []*entity.Dish, limit, offset int) *dto.DishListResponse {
	items := make([]dto.DishResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDishResponse(d))
	}
	return &dto.DishListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toDishResponse(d *entity.Dish) *dto.DishResponse {
	if d == nil {
		return nil
	}
	return &dto.DishResponse{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category,
		Price:        d.Price,
		Status:       d.Status,
		Ingredients:  d.IngredientIDs,
		HasImage:     len(d.Image) > 0,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	if i == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Unit:      i.Unit,
		Stock:     i.Stock,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
