package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest body para POST /api/payments.
type CreatePaymentRequest struct {
	InstallationCode string          `json:"installation_code"`
	DeferredPlanID   *int64          `json:"deferred_plan_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Method           string          `json:"method"` // EFECTIVO, TRANSFERENCIA, OTRO
	Reference        string          `json:"reference,omitempty"`
}

// PaymentResponse recaudo en respuestas.
type PaymentResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	InstallationCode string          `json:"installation_code"`
	DeferredPlanID   *int64          `json:"deferred_plan_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Method           string          `json:"method"`
	Reference        string          `json:"reference,omitempty"`
	ReceivedAt       time.Time       `json:"received_at"`
	ReceivedBy       string          `json:"received_by"`
}
