package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest registro de compra de insumos.
type CreatePurchaseRequest struct {
	RestaurantID string `json:"restaurant_id"`
	IngredientID string `json:"ingredient_id"`
	Supplier     string `json:"supplier"`
	Quantity     string `json:"quantity"`
	UnitCost     string `json:"unit_cost"`
	PurchasedAt  string `json:"purchased_at"` // YYYY-MM-DD; vacío = hoy
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	IngredientID string          `json:"ingredient_id"`
	Supplier     string          `json:"supplier"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	PurchasedAt  time.Time       `json:"purchased_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PurchaseListResponse listado paginado.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReportResponse el cierre diario de una sucursal.
type ReportResponse struct {
	ID            string          `json:"id"`
	RestaurantID  string          `json:"restaurant_id"`
	ReportDate    string          `json:"report_date"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GenerateReportRequest genera (o regenera) el cierre de una fecha.
type GenerateReportRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ReportDate   string `json:"report_date"` // YYYY-MM-DD; vacío = hoy
	Notes        string `json:"notes"`
}

// ReportListResponse listado paginado.
type ReportListResponse struct {
	Items []ReportResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
