package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para suscriptores.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndDocument(companyID, documentID string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
