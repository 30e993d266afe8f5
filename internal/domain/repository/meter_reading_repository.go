package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// MeterReadingRepository define el puerto de persistencia para lecturas de medidor.
type MeterReadingRepository interface {
	Create(reading *entity.MeterReading) error
	GetByID(id string) (*entity.MeterReading, error)
	// GetLatest retorna la última lectura registrada de la instalación, o nil.
	GetLatest(companyID, installationCode string) (*entity.MeterReading, error)
	GetByPeriod(companyID, installationCode, period string) (*entity.MeterReading, error)
	ListByInstallation(companyID, installationCode string, limit, offset int) ([]*entity.MeterReading, error)
}
