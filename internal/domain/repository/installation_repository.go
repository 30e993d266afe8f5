package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// InstallationRepository define el puerto de persistencia para instalaciones/contratos.
type InstallationRepository interface {
	Create(installation *entity.Installation) error
	GetByID(id string) (*entity.Installation, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Installation, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Installation, error)
	Update(installation *entity.Installation) error
}
