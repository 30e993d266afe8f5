package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// InstallationUseCase casos de uso CRUD para instalaciones/contratos.
// Implementa además deferred.InstallationLookup para el libro de diferidos.
type InstallationUseCase struct {
	repo repository.InstallationRepository
}

// NewInstallationUseCase construye el caso de uso.
func NewInstallationUseCase(repo repository.InstallationRepository) *InstallationUseCase {
	return &InstallationUseCase{repo: repo}
}

// Create crea una instalación. El código es único por empresa.
func (uc *InstallationUseCase) Create(companyID string, in dto.CreateInstallationRequest) (*dto.InstallationResponse, error) {
	if in.Code == "" || in.CustomerID == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stratum < 1 || in.Stratum > 6 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	installation := &entity.Installation{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Code:        in.Code,
		CustomerID:  in.CustomerID,
		Address:     in.Address,
		Stratum:     in.Stratum,
		MeterSerial: in.MeterSerial,
		Status:      entity.InstallationActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(installation); err != nil {
		return nil, err
	}
	return toInstallationResponse(installation), nil
}

// GetByID obtiene una instalación de la empresa.
func (uc *InstallationUseCase) GetByID(companyID, id string) (*dto.InstallationResponse, error) {
	installation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if installation == nil || installation.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toInstallationResponse(installation), nil
}

// List lista instalaciones de la empresa con paginación.
func (uc *InstallationUseCase) List(companyID string, limit, offset int) ([]dto.InstallationResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InstallationResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInstallationResponse(i))
	}
	return items, nil
}

// Update actualiza campos mutables. El código y la empresa no cambian.
func (uc *InstallationUseCase) Update(companyID, id string, in dto.UpdateInstallationRequest) (*dto.InstallationResponse, error) {
	installation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if installation == nil || installation.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Address != nil {
		installation.Address = *in.Address
	}
	if in.Stratum != nil {
		if *in.Stratum < 1 || *in.Stratum > 6 {
			return nil, domain.ErrInvalidInput
		}
		installation.Stratum = *in.Stratum
	}
	if in.MeterSerial != nil {
		installation.MeterSerial = *in.MeterSerial
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.InstallationActive, entity.InstallationSuspended, entity.InstallationRetired:
			installation.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	installation.UpdatedAt = time.Now()
	if err := uc.repo.Update(installation); err != nil {
		return nil, err
	}
	return toInstallationResponse(installation), nil
}

// Exists implementa deferred.InstallationLookup: consulta por empresa y código.
func (uc *InstallationUseCase) Exists(companyID, installationCode string) (bool, error) {
	installation, err := uc.repo.GetByCompanyAndCode(companyID, installationCode)
	if err != nil {
		return false, err
	}
	return installation != nil, nil
}

// GetByCode obtiene una instalación por código (para lecturas y recaudos).
func (uc *InstallationUseCase) GetByCode(companyID, code string) (*entity.Installation, error) {
	installation, err := uc.repo.GetByCompanyAndCode(companyID, code)
	if err != nil {
		return nil, err
	}
	if installation == nil {
		return nil, domain.ErrReference
	}
	return installation, nil
}

func toInstallationResponse(i *entity.Installation) *dto.InstallationResponse {
	return &dto.InstallationResponse{
		ID:          i.ID,
		CompanyID:   i.CompanyID,
		Code:        i.Code,
		CustomerID:  i.CustomerID,
		Address:     i.Address,
		Stratum:     i.Stratum,
		MeterSerial: i.MeterSerial,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
	}
}
