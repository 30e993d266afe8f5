package payroll

import (
	"context"

	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// PayrollTxRunner ejecuta una función con el repositorio de nómina atado a una
// transacción (período + entradas se persisten atómicamente).
type PayrollTxRunner interface {
	RunPayroll(ctx context.Context, fn func(repo repository.PayrollRepository) error) error
}

// Document es el documento de nómina electrónica que se envía a la DIAN.
// El API del gobierno se trata como servicio externo opaco: aquí solo se mapea
// el JSON que espera su recepción.
type Document struct {
	SoftwareID  string          `json:"software_id"`
	Environment string          `json:"ambiente"` // "1" producción, "2" habilitación
	EmployerNIT string          `json:"empleador_nit"`
	Period      string          `json:"periodo"` // "2026-03"
	Workers     []DocumentEntry `json:"trabajadores"`
}

// DocumentEntry liquidación individual dentro del documento.
type DocumentEntry struct {
	DocumentType string `json:"tipo_documento"`
	DocumentID   string `json:"numero_documento"`
	WorkerType   string `json:"tipo_trabajador"`
	DaysWorked   int    `json:"dias_trabajados"`
	Earned       string `json:"devengado"`
	Health       string `json:"deduccion_salud"`
	Pension      string `json:"deduccion_pension"`
	Net          string `json:"neto"`
}

// SubmitResult respuesta del servicio de recepción DIAN.
type SubmitResult struct {
	Accepted bool
	TrackID  string
	Message  string
}

// Submitter envía el documento al servicio de nómina electrónica.
type Submitter interface {
	Submit(ctx context.Context, doc *Document) (*SubmitResult, error)
}
