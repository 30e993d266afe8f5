package entity

import "time"

// BillingConcept representa un concepto de facturación (cargo fijo, consumo, matrícula,
// medidor, reconexión, etc.). DeferredEligible marca los conceptos que pueden
// financiarse en cuotas (diferidos).
type BillingConcept struct {
	ID               string
	CompanyID        string
	Code             string // único por empresa
	Name             string
	DeferredEligible bool
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
