package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

// ReportUseCase genera y consulta los cierres diarios de sucursal: ventas y
// pedidos entregados del día más los gastos en compras de insumos.
type ReportUseCase struct {
	reports   repository.ReportRepository
	orders    repository.OrderRepository
	purchases repository.PurchaseRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, orders repository.OrderRepository, purchases repository.PurchaseRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, orders: orders, purchases: purchases}
}

// Generate arma el cierre del día: agrega ventas y gastos desde los
// repositorios y persiste el reporte. Si ya existe un cierre para la fecha
// devuelve ErrConflict (el cierre no se regenera en silencio).
func (uc *ReportUseCase) Generate(ctx context.Context, in dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if in.RestaurantID == "" {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.ReportDate != "" {
		parsed, err := time.Parse(menuDateLayout, in.ReportDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	existing, err := uc.reports.GetByRestaurantAndDate(ctx, in.RestaurantID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	sales, orderCount, err := uc.orders.SalesByRestaurantAndRange(ctx, in.RestaurantID, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.purchases.TotalByRestaurantAndRange(ctx, in.RestaurantID, from, to)
	if err != nil {
		return nil, err
	}

	r := &entity.Report{
		ID:            uuid.New().String(),
		RestaurantID:  in.RestaurantID,
		ReportDate:    from,
		TotalSales:    sales,
		TotalOrders:   orderCount,
		TotalExpenses: expenses,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	if err := uc.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	return toReportResponse(r), nil
}

// GetByID obtiene un cierre; ErrNotFound si no existe.
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	r, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toReportResponse(r), nil
}

// Entity devuelve la entidad del cierre (la necesita el generador de PDF).
func (uc *ReportUseCase) Entity(ctx context.Context, id string) (*entity.Report, error) {
	r, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// ListByRestaurant histórico de cierres.
func (uc *ReportUseCase) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) (*dto.ReportListResponse, error) {
	list, err := uc.reports.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return &dto.ReportListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cierre.
func (uc *ReportUseCase) Delete(ctx context.Context, id string) error {
	return uc.reports.Delete(ctx, id)
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:            r.ID,
		RestaurantID:  r.RestaurantID,
		ReportDate:    r.ReportDate.Format(menuDateLayout),
		TotalSales:    r.TotalSales,
		TotalOrders:   r.TotalOrders,
		TotalExpenses: r.TotalExpenses,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
}
