package repository

import "github.com/acuasoft/acueducto-api/internal/domain/entity"

// DeferredPlanFilter filtros opcionales del listado de diferidos.
type DeferredPlanFilter struct {
	InstallationCode string // vacío = todas las instalaciones
	Status           string // vacío = todos los estados
}

// DeferredPlanRepository define el puerto de persistencia para diferidos.
// Todas las lecturas filtran por empresa; GetByID retorna nil si el id no
// existe o pertenece a otra empresa.
type DeferredPlanRepository interface {
	// Create persiste el plan y asigna su ID (BIGSERIAL) en plan.ID.
	Create(plan *entity.DeferredPlan) error
	GetByID(id int64, companyID string) (*entity.DeferredPlan, error)
	// ListByCompany retorna los planes de la empresa ordenados por id descendente,
	// con dirección de instalación y nombre de concepto resueltos para presentación.
	ListByCompany(companyID string, filter DeferredPlanFilter) ([]*entity.DeferredPlanView, error)
	Update(plan *entity.DeferredPlan) error
}
