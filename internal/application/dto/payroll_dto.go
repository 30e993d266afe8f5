package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkerRequest body para POST /api/workers.
type CreateWorkerRequest struct {
	DocumentType string          `json:"document_type"`
	DocumentID   string          `json:"document_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	JobTitle     string          `json:"job_title,omitempty"`
	WorkerType   string          `json:"worker_type,omitempty"` // default "01" dependiente
	BaseSalary   decimal.Decimal `json:"base_salary"`
	HiredAt      string          `json:"hired_at"` // "2006-01-02"
}

// WorkerResponse trabajador en respuestas.
type WorkerResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	DocumentType string          `json:"document_type"`
	DocumentID   string          `json:"document_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	JobTitle     string          `json:"job_title,omitempty"`
	WorkerType   string          `json:"worker_type"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Active       bool            `json:"active"`
	HiredAt      string          `json:"hired_at"`
}

// LiquidatePayrollRequest body para POST /api/payroll/periods.
type LiquidatePayrollRequest struct {
	Period string `json:"period"` // "2026-03"
}

// PayrollEntryResponse liquidación individual de un trabajador.
type PayrollEntryResponse struct {
	ID               string          `json:"id"`
	WorkerID         string          `json:"worker_id"`
	DaysWorked       int             `json:"days_worked"`
	Earned           decimal.Decimal `json:"earned"`
	HealthDeduction  decimal.Decimal `json:"health_deduction"`
	PensionDeduction decimal.Decimal `json:"pension_deduction"`
	Net              decimal.Decimal `json:"net"`
}

// PayrollPeriodResponse período liquidado con estado DIAN.
type PayrollPeriodResponse struct {
	ID            string                 `json:"id"`
	CompanyID     string                 `json:"company_id"`
	Period        string                 `json:"period"`
	TotalEarned   decimal.Decimal        `json:"total_earned"`
	TotalDeducted decimal.Decimal        `json:"total_deducted"`
	TotalNet      decimal.Decimal        `json:"total_net"`
	DIANStatus    string                 `json:"dian_status"`
	DIANTrackID   string                 `json:"dian_track_id,omitempty"`
	Entries       []PayrollEntryResponse `json:"entries,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
