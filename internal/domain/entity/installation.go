package entity

import "time"

// Estados de una instalación.
const (
	InstallationActive    = "ACTIVA"
	InstallationSuspended = "SUSPENDIDA"
	InstallationRetired   = "RETIRADA"
)

// Installation representa una instalación/contrato: el punto de servicio facturable
// (la acometida de agua de un suscriptor). El código es único por empresa y es la
// referencia que usan diferidos, lecturas y recaudos.
type Installation struct {
	ID         string
	CompanyID  string
	Code       string // código de contrato/instalación, único por empresa
	CustomerID string
	Address    string
	Stratum    int    // estrato socioeconómico (1-6)
	MeterSerial string
	Status     string // ACTIVA, SUSPENDIDA, RETIRADA
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
