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

// PurchaseUseCase registro y consulta de compras de insumos. Al registrar una
// compra sube el stock del insumo.
type PurchaseUseCase struct {
	purchases   repository.PurchaseRepository
	ingredients repository.IngredientRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(purchases repository.PurchaseRepository, ingredients repository.IngredientRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, ingredients: ingredients}
}

// Create valida y persiste la compra; TotalCost = Quantity * UnitCost.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.RestaurantID == "" || in.IngredientID == "" {
		return nil, domain.ErrInvalidInput
	}
	qty, err := appform.ParsePrice(in.Quantity)
	if err != nil || qty.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	unitCost, err := appform.ParsePrice(in.UnitCost)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	ing, err := uc.ingredients.GetByID(ctx, in.IngredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}

	purchasedAt := time.Now()
	if in.PurchasedAt != "" {
		purchasedAt, err = time.Parse(menuDateLayout, in.PurchasedAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	p := &entity.IngredientPurchase{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		IngredientID: in.IngredientID,
		Supplier:     in.Supplier,
		Quantity:     qty,
		UnitCost:     unitCost,
		TotalCost:    qty.Mul(unitCost),
		PurchasedAt:  purchasedAt,
		CreatedAt:    time.Now(),
	}
	if err := uc.purchases.Create(ctx, p); err != nil {
		return nil, err
	}

	// El stock agregado del insumo sube con la compra.
	ing.Stock = ing.Stock.Add(qty)
	if ing.Status == entity.IngredientStatusOut {
		ing.Status = entity.IngredientStatusAvailable
	}
	ing.UpdatedAt = time.Now()
	if err := uc.ingredients.Update(ctx, ing); err != nil {
		return nil, err
	}

	return toPurchaseResponse(p), nil
}

// ListByRestaurant listado de compras de la sucursal.
func (uc *PurchaseUseCase) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchases.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una compra.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	return uc.purchases.Delete(ctx, id)
}

func toPurchaseResponse(p *entity.IngredientPurchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	return &dto.PurchaseResponse{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		IngredientID: p.IngredientID,
		Supplier:     p.Supplier,
		Quantity:     p.Quantity,
		UnitCost:     p.UnitCost,
		TotalCost:    p.TotalCost,
		PurchasedAt:  p.PurchasedAt,
		CreatedAt:    p.CreatedAt,
	}
}
