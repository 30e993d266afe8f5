package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago aceptados en recaudo.
const (
	PaymentMethodCash     = "EFECTIVO"
	PaymentMethodTransfer = "TRANSFERENCIA"
	PaymentMethodOther    = "OTRO"
)

// Payment representa un recaudo: un pago recibido de un suscriptor, asociado a una
// instalación y opcionalmente a un diferido. Es solo un registro contable; la
// aplicación del pago al saldo del diferido la hace un proceso externo.
type Payment struct {
	ID               string
	CompanyID        string
	InstallationCode string
	DeferredPlanID   *int64 // nil si el pago no corresponde a un diferido
	Amount           decimal.Decimal
	Method           string // EFECTIVO, TRANSFERENCIA, OTRO
	Reference        string // número de recibo o comprobante
	ReceivedAt       time.Time
	ReceivedBy       string
	CreatedAt        time.Time
}
