package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/application/table"
)

// DashboardResponse payload de una pantalla de rol: la tabla activa más los
// widgets propios del rol. Tab indica qué colección está desplegada.
type DashboardResponse struct {
	Role    string        `json:"role"`
	Tab     string        `json:"tab"`
	Table   table.View    `json:"table"`
	Summary *SalesSummary `json:"summary,omitempty"`
}

// SalesSummary widget de ventas del día/mes para admin, director y cajero.
type SalesSummary struct {
	TodaySales    decimal.Decimal `json:"today_sales"`
	TodayOrders   int             `json:"today_orders"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyOrders int             `json:"monthly_orders"`
	DateLabel     string          `json:"date_label"`
}
