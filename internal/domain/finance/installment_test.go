package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/finance"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestInstallmentAmount_SinInteres(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		count     int
		want      string
	}{
		{"mil en diez cuotas", "1000", 10, "100"},
		{"trescientos en tres cuotas", "300", 3, "100"},
		{"una sola cuota", "250000", 1, "250000"},
		{"division con residuo", "100", 3, "33.33"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := finance.InstallmentAmount(d(tc.principal), tc.count, decimal.Zero)
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tc.want)), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

func TestInstallmentAmount_ConInteresPlano(t *testing.T) {
	// 1000 al 5% plano en 10 cuotas: (1000 + 50) / 10 = 105.00
	got, err := finance.InstallmentAmount(d("1000"), 10, d("5"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("105")), "obtenido %s", got)
}

func TestInstallmentAmount_InteresAumentaLaCuota(t *testing.T) {
	sin, err := finance.InstallmentAmount(d("845000"), 12, decimal.Zero)
	require.NoError(t, err)
	con, err := finance.InstallmentAmount(d("845000"), 12, d("2.5"))
	require.NoError(t, err)
	assert.True(t, con.GreaterThan(sin), "con interés %s debe superar sin interés %s", con, sin)
}

func TestInstallmentAmount_NuncaCero(t *testing.T) {
	// Protección contra el defecto de cuotas en cero: un monto positivo cuya
	// cuota redondea a 0.00 se rechaza en lugar de persistirse.
	_, err := finance.InstallmentAmount(d("0.01"), 10, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInstallmentAmount_EntradasInvalidas(t *testing.T) {
	_, err := finance.InstallmentAmount(decimal.Zero, 10, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	_, err = finance.InstallmentAmount(d("-100"), 10, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo")

	_, err = finance.InstallmentAmount(d("1000"), 0, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cero cuotas")

	_, err = finance.InstallmentAmount(d("1000"), 10, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tasa negativa")
}

func TestSchedule_SumaExacta(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	// 100 / 3 = 33.33 por cuota; la última absorbe el residuo (33.34).
	items, err := finance.Schedule(d("100"), 3, decimal.Zero, start)
	require.NoError(t, err)
	require.Len(t, items, 3)

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	assert.True(t, sum.Equal(d("100")), "la suma del calendario debe ser el total financiado, obtenido %s", sum)
	assert.True(t, items[0].Amount.Equal(d("33.33")))
	assert.True(t, items[2].Amount.Equal(d("33.34")))
}

func TestSchedule_FechasMensuales(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	items, err := finance.Schedule(d("1200"), 4, decimal.Zero, start)
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, 1, items[0].Number)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), items[0].DueDate)
	assert.Equal(t, time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), items[3].DueDate)
}

func TestTotalFinanced(t *testing.T) {
	assert.True(t, finance.TotalFinanced(d("1000"), d("5")).Equal(d("1050")))
	assert.True(t, finance.TotalFinanced(d("1000"), decimal.Zero).Equal(d("1000")))
}
