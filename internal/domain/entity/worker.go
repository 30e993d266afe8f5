package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de trabajador según la tabla 5.5.1 del anexo técnico de nómina electrónica.
const (
	WorkerTypeDependent   = "01" // dependiente
	WorkerTypePensioner   = "12"
	WorkerTypeApprentice  = "18"
)

// Worker representa un trabajador de la empresa (nómina).
type Worker struct {
	ID           string
	CompanyID    string
	DocumentType string // CC, CE, TI...
	DocumentID   string
	FirstName    string
	LastName     string
	JobTitle     string
	WorkerType   string          // código DIAN, ver constantes WorkerType*
	BaseSalary   decimal.Decimal // salario mensual
	Active       bool
	HiredAt      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
