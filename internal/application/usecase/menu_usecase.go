package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	appform "github.com/jhoicas/feedme-api/internal/application/form"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

const menuDateLayout = "2006-01-02"

// MenuUseCase casos de uso del menú del día y sus packs.
type MenuUseCase struct {
	menus  repository.MenuRepository
	dishes repository.DishRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(menus repository.MenuRepository, dishes repository.DishRepository) *MenuUseCase {
	return &MenuUseCase{menus: menus, dishes: dishes}
}

// Create arma el menú del día con sus packs. Cada pack pasa por el esquema
// del formulario; los platos/extras del multi-select se deduplican con el
// toggle. Una sucursal solo puede tener un menú por fecha.
func (uc *MenuUseCase) Create(ctx context.Context, in dto.CreateMenuRequest) (*dto.MenuResponse, appform.Errors, error) {
	if in.RestaurantID == "" {
		return nil, appform.Errors{"restaurant_id": "Sucursal es obligatoria"}, nil
	}
	date, err := parseMenuDate(in.MenuDate)
	if err != nil {
		return nil, appform.Errors{"menu_date": "Fecha inválida, formato YYYY-MM-DD"}, nil
	}

	existing, err := uc.menus.GetByRestaurantAndDate(ctx, in.RestaurantID, date)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrMenuAlreadyExists
	}

	menuID := uuid.New().String()
	items := make([]entity.DailyMenuItem, 0, len(in.Packs))
	schema := appform.PackSchema()
	for _, p := range in.Packs {
		errs := schema.Validate(appform.Values{"name": p.Name, "price": p.Price})
		if !errs.Valid() {
			return nil, errs, nil
		}
		price, err := appform.ParsePrice(p.Price)
		if err != nil {
			return nil, appform.Errors{"price": "Precio debe ser un precio válido"}, nil
		}
		dishSel := appform.NewSelection()
		for _, id := range p.Dishes {
			dishSel.Toggle(id)
		}
		extraSel := appform.NewSelection()
		for _, e := range p.Extras {
			extraSel.Toggle(e)
		}
		items = append(items, entity.DailyMenuItem{
			ID:      uuid.New().String(),
			MenuID:  menuID,
			Name:    p.Name,
			Price:   price,
			DishIDs: dishSel.IDs(),
			Extras:  extraSel.IDs(),
		})
	}

	now := time.Now()
	m := &entity.DailyMenu{
		ID:           menuID,
		RestaurantID: in.RestaurantID,
		MenuDate:     date,
		Status:       entity.MenuStatusDraft,
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.menus.Create(ctx, m); err != nil {
		return nil, nil, err
	}
	return toMenuResponse(m), nil, nil
}

// Publish pasa el menú de draft a published.
func (uc *MenuUseCase) Publish(ctx context.Context, id string) (*dto.MenuResponse, error) {
	m, err := uc.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Status == entity.MenuStatusPublished {
		return nil, domain.ErrConflict
	}
	m.Status = entity.MenuStatusPublished
	m.UpdatedAt = time.Now()
	if err := uc.menus.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMenuResponse(m), nil
}

// GetByID obtiene un menú; ErrNotFound si no existe.
func (uc *MenuUseCase) GetByID(ctx context.Context, id string) (*dto.MenuResponse, error) {
	m, err := uc.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMenuResponse(m), nil
}

// Today devuelve el menú publicado de hoy de una sucursal, o nil si no hay.
func (uc *MenuUseCase) Today(ctx context.Context, restaurantID string) (*dto.MenuResponse, error) {
	m, err := uc.menus.GetByRestaurantAndDate(ctx, restaurantID, time.Now())
	if err != nil {
		return nil, err
	}
	if m == nil || m.Status != entity.MenuStatusPublished {
		return nil, nil
	}
	return toMenuResponse(m), nil
}

// ListByRestaurant histórico de menús de la sucursal.
func (uc *MenuUseCase) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) (*dto.MenuListResponse, error) {
	list, err := uc.menus.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMenuResponse(m))
	}
	return &dto.MenuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el menú y sus packs.
func (uc *MenuUseCase) Delete(ctx context.Context, id string) error {
	return uc.menus.Delete(ctx, id)
}

func parseMenuDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(menuDateLayout, s)
}

func toMenuResponse(m *entity.DailyMenu) *dto.MenuResponse {
	if m == nil {
		return nil
	}
	packs := make([]dto.PackResponse, 0, len(m.Items))
	for _, it := range m.Items {
		packs = append(packs, dto.PackResponse{
			ID:     it.ID,
			Name:   it.Name,
			Price:  it.Price,
			Dishes: it.DishIDs,
			Extras: it.Extras,
		})
	}
	return &dto.MenuResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		MenuDate:     m.MenuDate.Format(menuDateLayout),
		Status:       m.Status,
		Packs:        packs,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
