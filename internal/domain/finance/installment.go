// Package finance contiene la aritmética pura de financiación de diferidos:
// interés plano aplicado una sola vez sobre el capital y repartido en cuotas
// iguales. No es una tabla de amortización con interés por período: la regla
// de negocio del acueducto aplica la tasa una única vez.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/acuasoft/acueducto-api/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// TotalFinanced devuelve el capital más el interés plano: P + P*R/100,
// redondeado a 2 decimales.
func TotalFinanced(principal, ratePercent decimal.Decimal) decimal.Decimal {
	interest := principal.Mul(ratePercent).Div(oneHundred)
	return principal.Add(interest).Round(2)
}

// InstallmentAmount calcula el valor de cada cuota:
//
//	R == 0: cuota = P / N
//	R  > 0: cuota = (P + P*R/100) / N
//
// Retorna ErrInvalidInput si P <= 0, N < 1 o R < 0, o si el valor calculado
// no resulta positivo (protección contra el defecto histórico de cuotas en
// cero que obligó a reparar datos en producción).
func InstallmentAmount(principal decimal.Decimal, count int, ratePercent decimal.Decimal) (decimal.Decimal, error) {
	if !principal.IsPositive() || count < 1 || ratePercent.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	total := TotalFinanced(principal, ratePercent)
	installment := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	if !installment.IsPositive() {
		// Montos tan pequeños que la cuota redondea a cero no son financiables.
		return decimal.Zero, domain.ErrInvalidInput
	}
	return installment, nil
}

// ScheduleItem es una cuota proyectada del plan.
type ScheduleItem struct {
	Number  int
	DueDate time.Time
	Amount  decimal.Decimal
}

// Schedule proyecta el calendario de cuotas de un plan: N cuotas mensuales a
// partir de startDate. La última cuota absorbe el residuo de redondeo para que
// la suma del calendario sea exactamente el total financiado.
//
// Es una proyección derivada; no se persiste.
func Schedule(principal decimal.Decimal, count int, ratePercent decimal.Decimal, startDate time.Time) ([]ScheduleItem, error) {
	installment, err := InstallmentAmount(principal, count, ratePercent)
	if err != nil {
		return nil, err
	}
	total := TotalFinanced(principal, ratePercent)

	items := make([]ScheduleItem, 0, count)
	accumulated := decimal.Zero
	for n := 1; n <= count; n++ {
		amount := installment
		if n == count {
			amount = total.Sub(accumulated)
		}
		items = append(items, ScheduleItem{
			Number:  n,
			DueDate: startDate.AddDate(0, n, 0),
			Amount:  amount,
		})
		accumulated = accumulated.Add(amount)
	}
	return items, nil
}
