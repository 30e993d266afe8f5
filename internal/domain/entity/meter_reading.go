package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeterReading representa la lectura de medidor de una instalación para un período
// (YYYY-MM). El consumo se deriva de lectura actual menos anterior y el cargo se
// calcula con la tarifa vigente del estrato al registrar la lectura.
type MeterReading struct {
	ID               string
	CompanyID        string
	InstallationCode string
	Period           string          // "2026-03"
	PreviousReading  decimal.Decimal // m³ acumulados lectura anterior
	CurrentReading   decimal.Decimal
	Consumption      decimal.Decimal // m³ del período
	Charge           decimal.Decimal // valor facturable calculado con la tarifa
	ReadAt           time.Time
	ReadBy           string // usuario lecturista
	CreatedAt        time.Time
}
