package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// TariffRepository define el puerto de persistencia para tarifas. Las tarifas
// se versionan, no se editan: Create desactiva la vigente del mismo estrato.
type TariffRepository interface {
	Create(tariff *entity.Tariff) error
	GetByID(id string) (*entity.Tariff, error)
	// GetActiveByStratum retorna la tarifa activa de la empresa para un estrato, o nil.
	GetActiveByStratum(companyID string, stratum int) (*entity.Tariff, error)
	ListByCompany(companyID string) ([]*entity.Tariff, error)
}
