// Package pdf implementa la generación del cierre diario imprimible de una
// sucursal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + Ciudad  │  Fecha del cierre             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUCURSAL: Dirección / Tel / Email                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ventas | Pedidos entregados | Gastos | Balance    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS del director                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF genera el PDF del cierre y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(
	_ context.Context,
	report *entity.Report,
	restaurant *entity.Restaurant,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre diario", true).
		WithAuthor(restaurant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, restaurant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(restaurantRow(restaurant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow(report))

	if report.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notesRows(report)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la sucursal (izq) y fecha del cierre (der).
func headerRow(report *entity.Report, restaurant *entity.Restaurant) core.Row {
	fecha := report.ReportDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(restaurant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(restaurant.City, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DIARIO DE SUCURSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// restaurantRow: datos de contacto de la sucursal.
func restaurantRow(restaurant *entity.Restaurant) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA SUCURSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(restaurant.Address, "—"),
				nonEmpty(restaurant.Phone, "—"),
				nonEmpty(restaurant.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// summaryRows: una fila por concepto del cierre.
func summaryRows(report *entity.Report) []core.Row {
	concept := func(label, value string) core.Row {
		return row.New(8).Add(
			col.New(6).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1,
			})),
			col.New(6).Add(text.New(value, props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}
	return []core.Row{
		concept("Ventas del día:", "$"+formatMoney(report.TotalSales.StringFixed(0))),
		concept("Pedidos entregados:", fmt.Sprintf("%d", report.TotalOrders)),
		concept("Gastos en insumos:", "$"+formatMoney(report.TotalExpenses.StringFixed(0))),
	}
}

// balanceRow: balance del día resaltado.
func balanceRow(report *entity.Report) core.Row {
	balance := report.TotalSales.Sub(report.TotalExpenses)
	return row.New(12).Add(
		col.New(6).Add(text.New("BALANCE DEL DÍA:", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(6).Add(text.New("$"+formatMoney(balance.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// notesRows: observaciones del director.
func notesRows(report *entity.Report) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, chunk := range splitEvery(report.Notes, 110) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 8, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
