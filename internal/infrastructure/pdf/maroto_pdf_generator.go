// Package pdf implementa la exportación del resumen de analítica a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + servicio/versión   │  Fecha de generación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Métrica | Valor                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota sobre la ventana de órdenes recientes          │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/demo-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.PDFRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.PDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los números usan separador de miles en inglés.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.English)}
}

// RenderAnalyticsReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderAnalyticsReport(
	_ context.Context,
	title string,
	report ports.AnalyticsReport,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		WithAuthor(report.Service, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricRow("Metric", "Value", true))
	for _, r := range g.metricRows(report) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + servicio (izq) y fecha de generación (der).
func headerRow(title string, report ports.AnalyticsReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s v%s", report.Service, report.Version), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated at", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) metricRows(report ports.AnalyticsReport) []core.Row {
	metrics := []struct {
		label string
		value int64
	}{
		{"Total users", report.TotalUsers},
		{"Total products", report.TotalProducts},
		{"Total orders", report.TotalOrders},
		{"Orders (last 7 days)", report.RecentOrders},
	}
	rows := make([]core.Row, 0, len(metrics))
	for _, mt := range metrics {
		rows = append(rows, metricRow(mt.label, g.formatCount(mt.value), false))
	}
	return rows
}

func metricRow(label, value string, header bool) core.Row {
	style := fontstyle.Normal
	color := &props.Color{}
	if header {
		style = fontstyle.Bold
		color = colorPrimary
	}
	return row.New(8).Add(
		col.New(8).Add(text.New(label, props.Text{Style: style, Color: color, Top: 2, Left: 1})),
		col.New(4).Add(text.New(value, props.Text{Style: style, Color: color, Align: align.Right, Top: 2, Right: 1})),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Recent orders count orders created within the trailing 7 days.", props.Text{
			Size: 7, Color: colorGray, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatCount inserta separadores de miles. Ej: 1234567 → "1,234,567".
func (g *MarotoPDFGenerator) formatCount(n int64) string {
	return g.printer.Sprintf("%d", n)
}
