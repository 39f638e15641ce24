package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientPurchase una compra de insumos registrada por el director de la
// sucursal. TotalCost se calcula al crear (Quantity * UnitCost) y se persiste.
type IngredientPurchase struct {
	ID           string
	RestaurantID string
	IngredientID string
	Supplier     string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	TotalCost    decimal.Decimal
	PurchasedAt  time.Time
	CreatedAt    time.Time
}

// Report el cierre diario de una sucursal: ventas, pedidos y gastos del día.
type Report struct {
	ID            string
	RestaurantID  string
	ReportDate    time.Time
	TotalSales    decimal.Decimal
	TotalOrders   int
	TotalExpenses decimal.Decimal
	Notes         string
	CreatedAt     time.Time
}
