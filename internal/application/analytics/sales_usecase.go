// Package analytics arma el widget de ventas que comparten las pantallas de
// admin, director y cajero: ventas del día y del mes en curso por sucursal.
package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/table"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
)

// SalesUseCase consultas read-only sobre pedidos entregados.
//
// Cada sucursal lleva su propio Sequencer: si dos refrescos del widget
// resuelven fuera de orden, solo el más reciente actualiza la caché
// ("gana la última petición", no "gana la última en resolver").
type SalesUseCase struct {
	orders repository.OrderRepository

	seqMu sync.Mutex
	seqs  map[string]*table.Sequencer

	lastMu sync.Mutex
	last   map[string]*dto.SalesSummary
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(orders repository.OrderRepository) *SalesUseCase {
	return &SalesUseCase{
		orders: orders,
		seqs:   make(map[string]*table.Sequencer),
		last:   make(map[string]*dto.SalesSummary),
	}
}

// Summary calcula ventas de hoy y del mes en curso con dos consultas en
// paralelo y deja el resultado en la caché solo si sigue siendo el fetch más
// reciente de esa sucursal.
func (uc *SalesUseCase) Summary(ctx context.Context, restaurantID string) (*dto.SalesSummary, error) {
	seq := uc.sequencer(restaurantID)
	token := seq.Next()

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type result struct {
		sales  decimal.Decimal
		orders int
		err    error
	}
	todayCh := make(chan result, 1)
	monthCh := make(chan result, 1)

	go func() {
		s, n, err := uc.orders.SalesByRestaurantAndRange(ctx, restaurantID, todayStart, todayEnd)
		todayCh <- result{s, n, err}
	}()
	go func() {
		s, n, err := uc.orders.SalesByRestaurantAndRange(ctx, restaurantID, monthStart, todayEnd)
		monthCh <- result{s, n, err}
	}()

	today := <-todayCh
	month := <-monthCh

	if today.err != nil {
		return nil, fmt.Errorf("ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("ventas del mes: %w", month.err)
	}

	summary := &dto.SalesSummary{
		TodaySales:    today.sales.Round(2),
		TodayOrders:   today.orders,
		MonthlySales:  month.sales.Round(2),
		MonthlyOrders: month.orders,
		DateLabel:     monthLabel(now),
	}

	if seq.Apply(token) {
		uc.lastMu.Lock()
		uc.last[restaurantID] = summary
		uc.lastMu.Unlock()
	}

	return summary, nil
}

// LastKnown devuelve el último resumen aplicado de la sucursal (puede ser
// nil). La pantalla lo usa como last-known-good cuando un fetch falla.
func (uc *SalesUseCase) LastKnown(restaurantID string) *dto.SalesSummary {
	uc.lastMu.Lock()
	defer uc.lastMu.Unlock()
	return uc.last[restaurantID]
}

func (uc *SalesUseCase) sequencer(restaurantID string) *table.Sequencer {
	uc.seqMu.Lock()
	defer uc.seqMu.Unlock()
	s, ok := uc.seqs[restaurantID]
	if !ok {
		s = &table.Sequencer{}
		uc.seqs[restaurantID] = s
	}
	return s
}

// monthLabel etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
