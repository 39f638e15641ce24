package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

// transiciones de estado permitidas para un pedido
var orderTransitions = map[string][]string{
	entity.OrderStatusReceived:  {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing: {entity.OrderStatusReady, entity.OrderStatusCancelled},
	entity.OrderStatusReady:     {entity.OrderStatusDelivered},
}

// OrderUseCase pedidos de clientes: creación, consulta y transición de estado.
type OrderUseCase struct {
	orders repository.OrderRepository
	dishes repository.DishRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, dishes repository.DishRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, dishes: dishes}
}

// Create arma el pedido congelando nombre y precio de cada plato al momento
// de ordenar. Platos inexistentes o no disponibles invalidan el pedido.
func (uc *OrderUseCase) Create(ctx context.Context, customerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.RestaurantID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		d, err := uc.dishes.GetByID(ctx, it.DishID)
		if err != nil {
			return nil, err
		}
		if d == nil || d.Status != entity.DishStatusAvailable {
			return nil, domain.ErrInvalidInput
		}
		item := entity.OrderItem{
			DishID:   d.ID,
			Name:     d.Name,
			Quantity: it.Quantity,
			Price:    d.Price,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	now := time.Now()
	o := &entity.Order{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		CustomerID:   customerID,
		Items:        items,
		Total:        total,
		Status:       entity.OrderStatusReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// GetByID obtiene un pedido; ErrNotFound si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

// UpdateStatus aplica una transición de estado válida.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !transitionAllowed(o.Status, status) {
		return nil, domain.ErrConflict
	}
	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return toOrderResponse(o), nil
}

// ListByRestaurant pedidos de la sucursal (vista cajero).
func (uc *OrderUseCase) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// ListByCustomer pedidos propios (vista cliente).
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, customerID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

func transitionAllowed(from, to string) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func toOrderList(list []*entity.Order, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			DishID:   it.DishID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: it.Subtotal(),
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		RestaurantID: o.RestaurantID,
		CustomerID:   o.CustomerID,
		Items:        items,
		Total:        o.Total,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
