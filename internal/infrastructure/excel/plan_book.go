// Package excel genera los archivos XLSX descargables de la aplicación.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/acuasoft/acueducto-api/internal/application/export"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/finance"
)

var _ export.PlanBookGenerator = (*PlanBook)(nil)

const (
	planBookSheet = "Diferidos"
	scheduleSheet = "Proyección"
)

// PlanBook genera el libro de diferidos en Excel (una fila por plan).
type PlanBook struct{}

func NewPlanBook() *PlanBook {
	return &PlanBook{}
}

// Generate arma el libro con los planes recibidos (ya filtrados y ordenados).
func (g *PlanBook) Generate(plans []*entity.DeferredPlanView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(planBookSheet)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"No.", "Contrato", "Dirección", "Concepto", "Monto", "Interés %", "Cuotas", "Pendientes", "Valor cuota", "Saldo", "Fecha inicio", "Estado", "Observaciones"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(planBookSheet, cell, header); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
	}

	for i, p := range plans {
		row := i + 2
		f.SetCellValue(planBookSheet, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(planBookSheet, fmt.Sprintf("B%d", row), p.InstallationCode)
		f.SetCellValue(planBookSheet, fmt.Sprintf("C%d", row), p.InstallationAddress)
		f.SetCellValue(planBookSheet, fmt.Sprintf("D%d", row), p.ConceptName)
		f.SetCellValue(planBookSheet, fmt.Sprintf("E%d", row), p.OriginalAmount.StringFixed(2))
		f.SetCellValue(planBookSheet, fmt.Sprintf("F%d", row), p.InterestRatePercent.String())
		f.SetCellValue(planBookSheet, fmt.Sprintf("G%d", row), p.InstallmentCount)
		f.SetCellValue(planBookSheet, fmt.Sprintf("H%d", row), p.InstallmentsRemaining)
		f.SetCellValue(planBookSheet, fmt.Sprintf("I%d", row), p.InstallmentAmount.StringFixed(2))
		f.SetCellValue(planBookSheet, fmt.Sprintf("J%d", row), p.Balance.StringFixed(2))
		f.SetCellValue(planBookSheet, fmt.Sprintf("K%d", row), p.StartDate.Format("2006-01-02"))
		f.SetCellValue(planBookSheet, fmt.Sprintf("L%d", row), p.Status)
		f.SetCellValue(planBookSheet, fmt.Sprintf("M%d", row), p.Notes)
	}

	if err := g.writeSchedules(f, plans); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSchedules agrega la hoja de proyección: el calendario de cuotas de cada
// plan no anulado, una fila por cuota.
func (g *PlanBook) writeSchedules(f *excelize.File, plans []*entity.DeferredPlanView) error {
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	headers := []string{"Diferido", "Contrato", "Cuota", "Vencimiento", "Valor"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(scheduleSheet, cell, header); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	row := 2
	for _, p := range plans {
		if p.Status == entity.PlanStatusCancelled {
			continue
		}
		items, err := finance.Schedule(p.OriginalAmount, p.InstallmentCount, p.InterestRatePercent, p.StartDate)
		if err != nil {
			return fmt.Errorf("calendario diferido %d: %w", p.ID, err)
		}
		for _, item := range items {
			f.SetCellValue(scheduleSheet, fmt.Sprintf("A%d", row), p.ID)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("B%d", row), p.InstallationCode)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("C%d", row), item.Number)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("D%d", row), item.DueDate.Format("2006-01-02"))
			f.SetCellValue(scheduleSheet, fmt.Sprintf("E%d", row), item.Amount.StringFixed(2))
			row++
		}
	}
	return nil
}
