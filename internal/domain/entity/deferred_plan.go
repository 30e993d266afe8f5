package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un plan diferido. ANULADO es terminal; no existe un estado "pagado"
// derivado automáticamente (la aplicación de pagos la hace un sistema externo).
const (
	PlanStatusPending   = "PENDIENTE"
	PlanStatusCancelled = "ANULADO"
)

// DeferredPlan representa un diferido: la financiación en cuotas de un concepto
// (matrícula, medidor, reconexión...) cargada a una instalación.
//
// La tabla subyacente es `diferidos` (id BIGSERIAL). InstallationCode y ConceptCode
// referencian por código a los catálogos de la empresa y son inmutables después
// de crear el plan, igual que CompanyID.
type DeferredPlan struct {
	ID                    int64
	CompanyID             string
	InstallationCode      string // contrato_id
	ConceptCode           string // concepto_diferido_id
	OriginalAmount        decimal.Decimal // monto_original
	InstallmentCount      int             // numero_cuotas
	InstallmentsRemaining int             // cuotas_pendientes; solo decrece
	StartDate             time.Time       // fecha_inicio
	InstallmentAmount     decimal.Decimal // valor_cuota
	InterestRatePercent   decimal.Decimal // por_interes, tasa plana sobre el capital
	Balance               decimal.Decimal // saldo; inicia igual a monto_original
	Status                string          // estado: PENDIENTE, ANULADO
	Notes                 string          // observaciones
	CreatedBy             string          // usuario
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DeferredPlanView es la fila de listado con los datos de catálogo resueltos
// (dirección de la instalación y nombre del concepto) para presentación.
type DeferredPlanView struct {
	DeferredPlan
	InstallationAddress string
	ConceptName         string
}
