package export

import (
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/finance"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// PlanBookGenerator genera el libro de diferidos en Excel.
type PlanBookGenerator interface {
	Generate(plans []*entity.DeferredPlanView) ([]byte, error)
}

// PlanStatementGenerator genera el estado de cuenta de un plan en PDF.
type PlanStatementGenerator interface {
	Generate(plan *entity.DeferredPlan, schedule []finance.ScheduleItem) ([]byte, error)
}

// ExportUseCase produce los archivos descargables del módulo de diferidos.
type ExportUseCase struct {
	planRepo  repository.DeferredPlanRepository
	book      PlanBookGenerator
	statement PlanStatementGenerator
}

func NewExportUseCase(planRepo repository.DeferredPlanRepository, book PlanBookGenerator, statement PlanStatementGenerator) *ExportUseCase {
	return &ExportUseCase{planRepo: planRepo, book: book, statement: statement}
}

// PlanBook exporta a Excel los diferidos de la empresa, con los mismos filtros
// del listado.
func (uc *ExportUseCase) PlanBook(companyID string, filter repository.DeferredPlanFilter) ([]byte, error) {
	plans, err := uc.planRepo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	return uc.book.Generate(plans)
}

// PlanStatement exporta en PDF el estado de cuenta de un plan: datos del
// diferido y su cronograma de cuotas proyectado.
func (uc *ExportUseCase) PlanStatement(companyID string, planID int64) ([]byte, error) {
	plan, err := uc.planRepo.GetByID(planID, companyID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	schedule, err := finance.Schedule(plan.OriginalAmount, plan.InstallmentCount, plan.InterestRatePercent, plan.StartDate)
	if err != nil {
		return nil, err
	}
	return uc.statement.Generate(plan, schedule)
}
