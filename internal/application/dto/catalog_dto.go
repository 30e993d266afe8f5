package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// UpdateCustomerRequest patch parcial para PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// CustomerResponse suscriptor en respuestas.
type CustomerResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// CreateInstallationRequest body para POST /api/installations.
type CreateInstallationRequest struct {
	Code        string `json:"code"`
	CustomerID  string `json:"customer_id"`
	Address     string `json:"address"`
	Stratum     int    `json:"stratum"`
	MeterSerial string `json:"meter_serial,omitempty"`
}

// UpdateInstallationRequest patch parcial para PUT /api/installations/:id.
type UpdateInstallationRequest struct {
	Address     *string `json:"address,omitempty"`
	Stratum     *int    `json:"stratum,omitempty"`
	MeterSerial *string `json:"meter_serial,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// InstallationResponse instalación en respuestas.
type InstallationResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Code        string    `json:"code"`
	CustomerID  string    `json:"customer_id"`
	Address     string    `json:"address"`
	Stratum     int       `json:"stratum"`
	MeterSerial string    `json:"meter_serial,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateConceptRequest body para POST /api/concepts.
type CreateConceptRequest struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	DeferredEligible bool   `json:"deferred_eligible"`
}

// UpdateConceptRequest patch parcial para PUT /api/concepts/:id.
type UpdateConceptRequest struct {
	Name             *string `json:"name,omitempty"`
	DeferredEligible *bool   `json:"deferred_eligible,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

// ConceptResponse concepto en respuestas.
type ConceptResponse struct {
	ID               string `json:"id"`
	CompanyID        string `json:"company_id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	DeferredEligible bool   `json:"deferred_eligible"`
	Active           bool   `json:"active"`
}

// CreateTariffRequest body para POST /api/tariffs.
type CreateTariffRequest struct {
	Stratum            int             `json:"stratum"`
	FixedCharge        decimal.Decimal `json:"fixed_charge"`
	BasicLimit         decimal.Decimal `json:"basic_limit"`
	BasicPrice         decimal.Decimal `json:"basic_price"`
	ComplementaryLimit decimal.Decimal `json:"complementary_limit"`
	ComplementaryPrice decimal.Decimal `json:"complementary_price"`
	SumptuaryPrice     decimal.Decimal `json:"sumptuary_price"`
	ValidFrom          string          `json:"valid_from"` // "2006-01-02"
}

// TariffResponse tarifa en respuestas.
type TariffResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	Stratum            int             `json:"stratum"`
	FixedCharge        decimal.Decimal `json:"fixed_charge"`
	BasicLimit         decimal.Decimal `json:"basic_limit"`
	BasicPrice         decimal.Decimal `json:"basic_price"`
	ComplementaryLimit decimal.Decimal `json:"complementary_limit"`
	ComplementaryPrice decimal.Decimal `json:"complementary_price"`
	SumptuaryPrice     decimal.Decimal `json:"sumptuary_price"`
	ValidFrom          string          `json:"valid_from"`
	Active             bool            `json:"active"`
}

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Status  string `json:"status"`
}
