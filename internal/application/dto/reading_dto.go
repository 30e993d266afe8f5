package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReadingRequest body para POST /api/readings.
// PreviousReading es opcional: si va nil se toma la última lectura registrada
// de la instalación (o cero si no hay ninguna).
type CreateReadingRequest struct {
	InstallationCode string           `json:"installation_code"`
	Period           string           `json:"period"` // "2026-03"
	CurrentReading   decimal.Decimal  `json:"current_reading"`
	PreviousReading  *decimal.Decimal `json:"previous_reading,omitempty"`
}

// ReadingResponse lectura con consumo y cargo calculados.
type ReadingResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	InstallationCode string          `json:"installation_code"`
	Period           string          `json:"period"`
	PreviousReading  decimal.Decimal `json:"previous_reading"`
	CurrentReading   decimal.Decimal `json:"current_reading"`
	Consumption      decimal.Decimal `json:"consumption"`
	Charge           decimal.Decimal `json:"charge"`
	ReadAt           time.Time       `json:"read_at"`
	ReadBy           string          `json:"read_by"`
}

// ReadingListResponse listado de lecturas de una instalación.
type ReadingListResponse struct {
	Items []ReadingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
