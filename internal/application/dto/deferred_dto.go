package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDeferredPlanRequest body para POST /api/deferred-plans.
// La empresa y el usuario salen del token, nunca del body.
type CreateDeferredPlanRequest struct {
	InstallationCode    string           `json:"installation_code"`
	ConceptCode         string           `json:"concept_code"`
	OriginalAmount      decimal.Decimal  `json:"original_amount"`
	InstallmentCount    int              `json:"installment_count"`
	StartDate           string           `json:"start_date"` // "2006-01-02"
	InterestRatePercent *decimal.Decimal `json:"interest_rate_percent,omitempty"` // nil = 0
	// InstallmentAmount opcional: si va vacío o <= 0 se calcula con la fórmula plana.
	InstallmentAmount *decimal.Decimal `json:"installment_amount,omitempty"`
	Notes             string           `json:"notes,omitempty"`
}

// UpdateDeferredPlanRequest patch parcial para PATCH /api/deferred-plans/:id.
// Solo los campos presentes sobreescriben; no hay recálculo implícito de la
// cuota al cambiar monto o número de cuotas.
type UpdateDeferredPlanRequest struct {
	OriginalAmount        *decimal.Decimal `json:"original_amount,omitempty"`
	InstallmentCount      *int             `json:"installment_count,omitempty"`
	InstallmentsRemaining *int             `json:"installments_remaining,omitempty"`
	StartDate             *string          `json:"start_date,omitempty"`
	InstallmentAmount     *decimal.Decimal `json:"installment_amount,omitempty"`
	InterestRatePercent   *decimal.Decimal `json:"interest_rate_percent,omitempty"`
	Balance               *decimal.Decimal `json:"balance,omitempty"`
	Notes                 *string          `json:"notes,omitempty"`
}

// DeferredPlanResponse plan en respuestas.
type DeferredPlanResponse struct {
	ID                    int64           `json:"id"`
	CompanyID             string          `json:"company_id"`
	InstallationCode      string          `json:"installation_code"`
	InstallationAddress   string          `json:"installation_address,omitempty"`
	ConceptCode           string          `json:"concept_code"`
	ConceptName           string          `json:"concept_name,omitempty"`
	OriginalAmount        decimal.Decimal `json:"original_amount"`
	InstallmentCount      int             `json:"installment_count"`
	InstallmentsRemaining int             `json:"installments_remaining"`
	StartDate             string          `json:"start_date"`
	InstallmentAmount     decimal.Decimal `json:"installment_amount"`
	InterestRatePercent   decimal.Decimal `json:"interest_rate_percent"`
	Balance               decimal.Decimal `json:"balance"`
	Status                string          `json:"status"`
	Notes                 string          `json:"notes,omitempty"`
	CreatedBy             string          `json:"created_by"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// DeferredPlanListResponse listado de planes.
type DeferredPlanListResponse struct {
	Items []DeferredPlanResponse `json:"items"`
}

// ScheduleItemResponse cuota proyectada del calendario de un plan.
type ScheduleItemResponse struct {
	Number  int             `json:"number"`
	DueDate string          `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// DeferredPlanScheduleResponse plan con su calendario proyectado.
type DeferredPlanScheduleResponse struct {
	Plan     DeferredPlanResponse   `json:"plan"`
	Schedule []ScheduleItemResponse `json:"schedule"`
}
