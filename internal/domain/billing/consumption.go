// Package billing contiene el cálculo puro del cargo por consumo de agua según
// la estructura tarifaria por rangos (básico, complementario, suntuario).
package billing

import (
	"github.com/shopspring/decimal"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
)

// ConsumptionCharge calcula el valor facturable de un consumo en m³ contra una
// tarifa: cargo fijo más cada rango liquidado a su precio. Los metros cúbicos
// por encima del tope básico pagan precio complementario hasta su tope, y el
// excedente paga precio suntuario.
//
// Retorna ErrInvalidInput si el consumo es negativo.
func ConsumptionCharge(consumption decimal.Decimal, tariff *entity.Tariff) (decimal.Decimal, error) {
	if consumption.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}

	charge := tariff.FixedCharge
	remaining := consumption

	// Rango básico
	basic := decimal.Min(remaining, tariff.BasicLimit)
	charge = charge.Add(basic.Mul(tariff.BasicPrice))
	remaining = remaining.Sub(basic)

	// Rango complementario
	complementarySpan := tariff.ComplementaryLimit.Sub(tariff.BasicLimit)
	complementary := decimal.Min(remaining, complementarySpan)
	charge = charge.Add(complementary.Mul(tariff.ComplementaryPrice))
	remaining = remaining.Sub(complementary)

	// Suntuario: todo lo que exceda el tope complementario
	charge = charge.Add(remaining.Mul(tariff.SumptuaryPrice))

	return charge.Round(2), nil
}
