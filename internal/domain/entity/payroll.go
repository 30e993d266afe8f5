package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de envío de un período de nómina ante la DIAN.
const (
	PayrollStatusPending  = "PENDIENTE"
	PayrollStatusAccepted = "ACEPTADO"
	PayrollStatusRejected = "RECHAZADO"
)

// PayrollPeriod representa la liquidación de nómina de un período (YYYY-MM) de la
// empresa, junto con el estado de su envío como nómina electrónica a la DIAN.
type PayrollPeriod struct {
	ID          string
	CompanyID   string
	Period      string // "2026-03"
	TotalEarned decimal.Decimal
	TotalDeducted decimal.Decimal
	TotalNet    decimal.Decimal
	DIANStatus  string // PENDIENTE, ACEPTADO, RECHAZADO
	DIANTrackID string // identificador devuelto por el servicio DIAN
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayrollEntry es la liquidación individual de un trabajador dentro de un período.
type PayrollEntry struct {
	ID              string
	PayrollPeriodID string
	WorkerID        string
	DaysWorked      int
	Earned          decimal.Decimal // devengado: salario proporcional + auxilios
	HealthDeduction decimal.Decimal // salud 4%
	PensionDeduction decimal.Decimal // pensión 4%
	Net             decimal.Decimal
	CreatedAt       time.Time
}
