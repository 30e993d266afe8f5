// Package pdf implementa la generación del estado de cuenta de un diferido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° de diferido + Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Contrato / Concepto / Monto / Interés / Saldo        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cuota | Vencimiento | Valor                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL FINANCIADO                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/acuasoft/acueducto-api/internal/application/export"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/finance"
)

var _ export.PlanStatementGenerator = (*PlanStatement)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PlanStatement genera el estado de cuenta de un diferido usando Maroto v2.
type PlanStatement struct {
	companyName string
}

// NewPlanStatement construye el generador. companyName encabeza el documento.
func NewPlanStatement(companyName string) *PlanStatement {
	return &PlanStatement{companyName: companyName}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *PlanStatement) Generate(plan *entity.DeferredPlan, schedule []finance.ScheduleItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta de Diferido", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(planDataRows(plan)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(scheduleHeaderRow())
	for _, item := range schedule {
		m.AddRows(scheduleRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(finance.TotalFinanced(plan.OriginalAmount, plan.InterestRatePercent)))

	if plan.Status == entity.PlanStatusCancelled {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("DIFERIDO ANULADO. Este cronograma se conserva solo como referencia histórica.", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: razón social (izq) y número de diferido + fecha (der).
func (g *PlanStatement) headerRow(plan *entity.DeferredPlan) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado de cuenta de diferido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("DIFERIDO N° %d", plan.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// planDataRows: bloque de datos del plan.
func planDataRows(plan *entity.DeferredPlan) []core.Row {
	pair := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 9, Top: 6}),
		)
	}
	rows := []core.Row{
		row.New(12).Add(
			pair("Contrato", plan.InstallationCode),
			pair("Concepto", plan.ConceptCode),
			pair("Estado", plan.Status),
		),
		row.New(12).Add(
			pair("Monto original", "$"+plan.OriginalAmount.StringFixed(2)),
			pair("Interés", plan.InterestRatePercent.String()+" %"),
			pair("Saldo", "$"+plan.Balance.StringFixed(2)),
		),
		row.New(12).Add(
			pair("Cuotas", fmt.Sprintf("%d", plan.InstallmentCount)),
			pair("Cuotas pendientes", fmt.Sprintf("%d", plan.InstallmentsRemaining)),
			pair("Valor cuota", "$"+plan.InstallmentAmount.StringFixed(2)),
		),
	}
	if plan.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observaciones", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(plan.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	return rows
}

// scheduleHeaderRow: cabecera de la tabla de cuotas.
func scheduleHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cuota", 2, align.Center),
		h("Vencimiento", 5, align.Center),
		h("Valor", 5, align.Right),
	)
}

// scheduleRow: una fila por cuota proyectada.
func scheduleRow(item finance.ScheduleItem) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", item.Number),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			item.DueDate.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			"$"+item.Amount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total financiado alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL FINANCIADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(5).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
