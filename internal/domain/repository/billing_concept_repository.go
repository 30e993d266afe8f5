package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// BillingConceptRepository define el puerto de persistencia para conceptos de facturación.
type BillingConceptRepository interface {
	Create(concept *entity.BillingConcept) error
	GetByID(id string) (*entity.BillingConcept, error)
	GetByCompanyAndCode(companyID, code string) (*entity.BillingConcept, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.BillingConcept, error)
	Update(concept *entity.BillingConcept) error
}
