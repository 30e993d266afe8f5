package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// PayrollRepository define el puerto de persistencia para períodos de nómina y sus entradas.
type PayrollRepository interface {
	CreatePeriod(period *entity.PayrollPeriod) error
	CreateEntry(entry *entity.PayrollEntry) error
	GetPeriodByID(id, companyID string) (*entity.PayrollPeriod, error)
	GetPeriodByCompanyAndPeriod(companyID, period string) (*entity.PayrollPeriod, error)
	ListPeriodsByCompany(companyID string, limit, offset int) ([]*entity.PayrollPeriod, error)
	ListEntriesByPeriod(periodID string) ([]*entity.PayrollEntry, error)
	UpdatePeriod(period *entity.PayrollPeriod) error
}
