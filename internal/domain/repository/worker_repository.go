package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// WorkerRepository define el puerto de persistencia para trabajadores.
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	GetByCompanyAndDocument(companyID, documentID string) (*entity.Worker, error)
	ListActiveByCompany(companyID string) ([]*entity.Worker, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Worker, error)
	Update(worker *entity.Worker) error
}
