package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// ConceptUseCase casos de uso CRUD para conceptos de facturación.
// Implementa además deferred.ConceptLookup para el libro de diferidos.
type ConceptUseCase struct {
	repo repository.BillingConceptRepository
}

// NewConceptUseCase construye el caso de uso.
func NewConceptUseCase(repo repository.BillingConceptRepository) *ConceptUseCase {
	return &ConceptUseCase{repo: repo}
}

// Create crea un concepto. El código es único por empresa.
func (uc *ConceptUseCase) Create(companyID string, in dto.CreateConceptRequest) (*dto.ConceptResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	concept := &entity.BillingConcept{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Code:             in.Code,
		Name:             in.Name,
		DeferredEligible: in.DeferredEligible,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(concept); err != nil {
		return nil, err
	}
	return toConceptResponse(concept), nil
}

// GetByID obtiene un concepto de la empresa.
func (uc *ConceptUseCase) GetByID(companyID, id string) (*dto.ConceptResponse, error) {
	concept, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if concept == nil || concept.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toConceptResponse(concept), nil
}

// List lista conceptos de la empresa con paginación.
func (uc *ConceptUseCase) List(companyID string, limit, offset int) ([]dto.ConceptResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConceptResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConceptResponse(c))
	}
	return items, nil
}

// Update actualiza campos mutables del concepto.
func (uc *ConceptUseCase) Update(companyID, id string, in dto.UpdateConceptRequest) (*dto.ConceptResponse, error) {
	concept, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if concept == nil || concept.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		concept.Name = *in.Name
	}
	if in.DeferredEligible != nil {
		concept.DeferredEligible = *in.DeferredEligible
	}
	if in.Active != nil {
		concept.Active = *in.Active
	}
	concept.UpdatedAt = time.Now()
	if err := uc.repo.Update(concept); err != nil {
		return nil, err
	}
	return toConceptResponse(concept), nil
}

// Exists implementa deferred.ConceptLookup.
func (uc *ConceptUseCase) Exists(companyID, conceptCode string) (bool, error) {
	concept, err := uc.repo.GetByCompanyAndCode(companyID, conceptCode)
	if err != nil {
		return false, err
	}
	return concept != nil, nil
}

// IsDeferredEligible implementa deferred.ConceptLookup. Retorna false para
// códigos inexistentes o conceptos inactivos.
func (uc *ConceptUseCase) IsDeferredEligible(companyID, conceptCode string) (bool, error) {
	concept, err := uc.repo.GetByCompanyAndCode(companyID, conceptCode)
	if err != nil {
		return false, err
	}
	return concept != nil && concept.Active && concept.DeferredEligible, nil
}

func toConceptResponse(c *entity.BillingConcept) *dto.ConceptResponse {
	return &dto.ConceptResponse{
		ID:               c.ID,
		CompanyID:        c.CompanyID,
		Code:             c.Code,
		Name:             c.Name,
		DeferredEligible: c.DeferredEligible,
		Active:           c.Active,
	}
}
