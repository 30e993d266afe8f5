package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/acuasoft/acueducto-api/internal/infrastructure/excel"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
)

func TestPlanBook_Generate(t *testing.T) {
	plans := []*entity.DeferredPlanView{
		{
			DeferredPlan: entity.DeferredPlan{
				ID:                    7,
				CompanyID:             "coop-1",
				InstallationCode:      "CT-0042",
				ConceptCode:           "MAT",
				OriginalAmount:        decimal.NewFromInt(350000),
				InstallmentCount:      10,
				InstallmentsRemaining: 8,
				StartDate:             time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
				InstallmentAmount:     decimal.NewFromInt(35000),
				InterestRatePercent:   decimal.Zero,
				Balance:               decimal.NewFromInt(280000),
				Status:                entity.PlanStatusPending,
				Notes:                 "matrícula nueva acometida",
			},
			InstallationAddress: "Vereda El Roble, finca La María",
			ConceptName:         "Matrícula",
		},
	}

	data, err := excel.NewPlanBook().Generate(plans)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Diferidos", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Contrato", header)

	contrato, _ := f.GetCellValue("Diferidos", "B2")
	assert.Equal(t, "CT-0042", contrato)
	monto, _ := f.GetCellValue("Diferidos", "E2")
	assert.Equal(t, "350000.00", monto)
	estado, _ := f.GetCellValue("Diferidos", "L2")
	assert.Equal(t, "PENDIENTE", estado)

	// Hoja de proyección: 10 cuotas mensuales de 35000 a partir de fecha_inicio.
	schedRows, err := f.GetRows("Proyección")
	require.NoError(t, err)
	assert.Len(t, schedRows, 11) // encabezado + 10 cuotas

	vencimiento, _ := f.GetCellValue("Proyección", "D2")
	assert.Equal(t, "2026-03-01", vencimiento)
	valor, _ := f.GetCellValue("Proyección", "E2")
	assert.Equal(t, "35000.00", valor)
}

func TestPlanBook_GenerateVacio(t *testing.T) {
	data, err := excel.NewPlanBook().Generate(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Diferidos")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // solo encabezados
}
