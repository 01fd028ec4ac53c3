// Package pdf genera la versión imprimible del resumen de disponibilidad de
// una ciudad, para coordinación en campo cuando no hay conectividad.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Red Vital · Resumen de ciudad │ Fecha de corte      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CIUDAD: Nombre, Departamento · Bancos activos               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Unidades | Bancos | Con disponibilidad        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

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

	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/application/reporting"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 158, Green: 27, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.SummaryPDFGenerator = (*MarotoSummaryGenerator)(nil)

// MarotoSummaryGenerator implementa reporting.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateCitySummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateCitySummaryPDF(
	_ context.Context,
	city *entity.City,
	summary *dto.CitySummaryResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de disponibilidad de sangre", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary.LastUpdated))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cityRow(city, summary.TotalBanks))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(summary) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(cutoff time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Red Vital · Resumen de disponibilidad por ciudad", props.Text{
				Size: 13, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Corte: "+cutoff.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func cityRow(city *entity.City, totalBanks int) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%s, %s", city.Name, city.State), props.Text{
				Size: 11, Style: fontstyle.Bold,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Bancos activos: %d", totalBanks), props.Text{
				Size: 9, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold}))
	}
	return row.New(8).Add(
		header("Tipo de sangre", 3),
		header("Unidades", 3),
		header("Bancos", 3),
		header("Con disponibilidad", 3),
	)
}

func tableRows(summary *dto.CitySummaryResponse) []core.Row {
	// Orden estable por tipo de sangre para que el reporte sea reproducible.
	types := make([]string, 0, len(summary.TypesSummary))
	for t := range summary.TypesSummary {
		types = append(types, t)
	}
	sort.Strings(types)

	rows := make([]core.Row, 0, len(types))
	for _, t := range types {
		s := summary.TypesSummary[t]
		cell := func(v string, size int) core.Col {
			return col.New(size).Add(text.New(v, props.Text{Size: 9}))
		}
		rows = append(rows, row.New(7).Add(
			cell(t, 3),
			cell(fmt.Sprintf("%d", s.TotalQuantity), 3),
			cell(fmt.Sprintf("%d", s.BloodBanks), 3),
			cell(fmt.Sprintf("%d", s.AvailableCount), 3),
		))
	}
	return rows
}
