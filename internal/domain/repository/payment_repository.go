package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para recaudos.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByInstallation(companyID, installationCode string, limit, offset int) ([]*entity.Payment, error)
	ListByPlan(companyID string, planID int64) ([]*entity.Payment, error)
}
