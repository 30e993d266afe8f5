package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/billing"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
)

// Tarifa de prueba: cargo fijo 5000, básico hasta 20 m³ a 800, complementario
// hasta 40 m³ a 1200, suntuario a 1800.
func testTariff() *entity.Tariff {
	return &entity.Tariff{
		FixedCharge:        decimal.NewFromInt(5000),
		BasicLimit:         decimal.NewFromInt(20),
		BasicPrice:         decimal.NewFromInt(800),
		ComplementaryLimit: decimal.NewFromInt(40),
		ComplementaryPrice: decimal.NewFromInt(1200),
		SumptuaryPrice:     decimal.NewFromInt(1800),
	}
}

func TestConsumptionCharge_RangoBasico(t *testing.T) {
	// 15 m³: 5000 + 15*800 = 17000
	got, err := billing.ConsumptionCharge(decimal.NewFromInt(15), testTariff())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(17000)), "obtenido %s", got)
}

func TestConsumptionCharge_CruzaRangos(t *testing.T) {
	// 50 m³: 5000 + 20*800 + 20*1200 + 10*1800 = 5000+16000+24000+18000 = 63000
	got, err := billing.ConsumptionCharge(decimal.NewFromInt(50), testTariff())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(63000)), "obtenido %s", got)
}

func TestConsumptionCharge_ConsumoCero(t *testing.T) {
	// Sin consumo se factura solo el cargo fijo.
	got, err := billing.ConsumptionCharge(decimal.Zero, testTariff())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5000)))
}

func TestConsumptionCharge_EnElTope(t *testing.T) {
	// Exactamente 20 m³ liquida todo a precio básico.
	got, err := billing.ConsumptionCharge(decimal.NewFromInt(20), testTariff())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(21000)), "obtenido %s", got)
}

func TestConsumptionCharge_ConsumoNegativo(t *testing.T) {
	_, err := billing.ConsumptionCharge(decimal.NewFromInt(-1), testTariff())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
