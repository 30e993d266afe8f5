package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tariff representa la estructura tarifaria vigente de la empresa para un estrato:
// cargo fijo mensual más tres rangos de consumo con precio por metro cúbico.
//
// Rangos (m³): [0, BasicLimit] básico, (BasicLimit, ComplementaryLimit] complementario,
// (ComplementaryLimit, ∞) suntuario.
type Tariff struct {
	ID                 string
	CompanyID          string
	Stratum            int             // estrato al que aplica (1-6)
	FixedCharge        decimal.Decimal // cargo fijo mensual
	BasicLimit         decimal.Decimal // tope del rango básico en m³
	BasicPrice         decimal.Decimal // precio m³ rango básico
	ComplementaryLimit decimal.Decimal // tope del rango complementario en m³
	ComplementaryPrice decimal.Decimal
	SumptuaryPrice     decimal.Decimal
	ValidFrom          time.Time
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
