package deferred

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/finance"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// DeferredPlanUseCase es el libro de diferidos: creación, consulta,
// actualización parcial y anulación de planes de financiación en cuotas.
type DeferredPlanUseCase struct {
	repo          repository.DeferredPlanRepository
	installations InstallationLookup
	concepts      ConceptLookup
}

// NewDeferredPlanUseCase construye el caso de uso con sus catálogos inyectados.
func NewDeferredPlanUseCase(
	repo repository.DeferredPlanRepository,
	installations InstallationLookup,
	concepts ConceptLookup,
) *DeferredPlanUseCase {
	return &DeferredPlanUseCase{repo: repo, installations: installations, concepts: concepts}
}

// Create valida las referencias contra los catálogos, calcula la cuota con la
// fórmula plana si el caller no la manda (o la manda <= 0) y persiste el plan
// en estado PENDIENTE con cuotas_pendientes = numero_cuotas y saldo = monto.
//
// No hay restricción de unicidad instalación+concepto: dos planes simultáneos
// para la misma pareja son válidos.
func (uc *DeferredPlanUseCase) Create(companyID, userID string, in dto.CreateDeferredPlanRequest) (*dto.DeferredPlanResponse, error) {
	if in.InstallationCode == "" || in.ConceptCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.OriginalAmount.IsPositive() || in.InstallmentCount < 1 {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	rate := decimal.Zero
	if in.InterestRatePercent != nil {
		rate = *in.InterestRatePercent
	}
	if rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	ok, err := uc.installations.Exists(companyID, in.InstallationCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrReference
	}
	ok, err = uc.concepts.Exists(companyID, in.ConceptCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrReference
	}
	eligible, err := uc.concepts.IsDeferredEligible(companyID, in.ConceptCode)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, domain.ErrInvalidInput
	}

	installment := decimal.Zero
	if in.InstallmentAmount != nil && in.InstallmentAmount.IsPositive() {
		installment = *in.InstallmentAmount
	} else {
		installment, err = finance.InstallmentAmount(in.OriginalAmount, in.InstallmentCount, rate)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	plan := &entity.DeferredPlan{
		CompanyID:             companyID,
		InstallationCode:      in.InstallationCode,
		ConceptCode:           in.ConceptCode,
		OriginalAmount:        in.OriginalAmount,
		InstallmentCount:      in.InstallmentCount,
		InstallmentsRemaining: in.InstallmentCount,
		StartDate:             startDate,
		InstallmentAmount:     installment,
		InterestRatePercent:   rate,
		Balance:               in.OriginalAmount,
		Status:                entity.PlanStatusPending,
		Notes:                 in.Notes,
		CreatedBy:             userID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan, "", ""), nil
}

// List retorna los planes de la empresa, del más reciente al más antiguo,
// con datos de catálogo resueltos para presentación.
func (uc *DeferredPlanUseCase) List(companyID string, filter repository.DeferredPlanFilter) (*dto.DeferredPlanListResponse, error) {
	views, err := uc.repo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeferredPlanResponse, 0, len(views))
	for _, v := range views {
		items = append(items, *toPlanResponse(&v.DeferredPlan, v.InstallationAddress, v.ConceptName))
	}
	return &dto.DeferredPlanListResponse{Items: items}, nil
}

// GetByID retorna un plan de la empresa o ErrNotFound si el id no existe
// (o pertenece a otra empresa; no se distingue).
func (uc *DeferredPlanUseCase) GetByID(companyID string, id int64) (*dto.DeferredPlanResponse, error) {
	plan, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan, "", ""), nil
}

// Schedule retorna el plan con su calendario de cuotas proyectado desde
// monto/cuotas/tasa almacenados. Es una proyección, no estado persistido.
func (uc *DeferredPlanUseCase) Schedule(companyID string, id int64) (*dto.DeferredPlanScheduleResponse, error) {
	plan, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	items, err := finance.Schedule(plan.OriginalAmount, plan.InstallmentCount, plan.InterestRatePercent, plan.StartDate)
	if err != nil {
		return nil, err
	}
	schedule := make([]dto.ScheduleItemResponse, 0, len(items))
	for _, it := range items {
		schedule = append(schedule, dto.ScheduleItemResponse{
			Number:  it.Number,
			DueDate: it.DueDate.Format(dateLayout),
			Amount:  it.Amount,
		})
	}
	return &dto.DeferredPlanScheduleResponse{
		Plan:     *toPlanResponse(plan, "", ""),
		Schedule: schedule,
	}, nil
}

// Update aplica un patch campo a campo: solo los campos presentes sobreescriben
// y no se recalcula la cuota al cambiar monto o número de cuotas (el recálculo
// solo ocurre en Create). Un patch vacío deja el plan intacto.
//
// cuotas_pendientes solo puede disminuir; empresa, instalación y concepto son
// inmutables y no aparecen en el patch.
func (uc *DeferredPlanUseCase) Update(companyID, userID string, id int64, in dto.UpdateDeferredPlanRequest) (*dto.DeferredPlanResponse, error) {
	plan, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}

	changed := false
	if in.OriginalAmount != nil {
		if !in.OriginalAmount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		plan.OriginalAmount = *in.OriginalAmount
		changed = true
	}
	if in.InstallmentCount != nil {
		if *in.InstallmentCount < 1 {
			return nil, domain.ErrInvalidInput
		}
		plan.InstallmentCount = *in.InstallmentCount
		changed = true
	}
	if in.InstallmentsRemaining != nil {
		if *in.InstallmentsRemaining < 0 || *in.InstallmentsRemaining > plan.InstallmentsRemaining {
			return nil, domain.ErrInvalidInput
		}
		plan.InstallmentsRemaining = *in.InstallmentsRemaining
		changed = true
	}
	if in.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		plan.StartDate = startDate
		changed = true
	}
	if in.InstallmentAmount != nil {
		if !in.InstallmentAmount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		plan.InstallmentAmount = *in.InstallmentAmount
		changed = true
	}
	if in.InterestRatePercent != nil {
		if in.InterestRatePercent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		plan.InterestRatePercent = *in.InterestRatePercent
		changed = true
	}
	if in.Balance != nil {
		if in.Balance.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		plan.Balance = *in.Balance
		changed = true
	}
	if in.Notes != nil {
		plan.Notes = *in.Notes
		changed = true
	}

	if !changed {
		// Patch vacío: no-op, se retorna el registro tal cual.
		return toPlanResponse(plan, "", ""), nil
	}

	plan.CreatedBy = userID
	plan.UpdatedAt = time.Now()
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan, "", ""), nil
}

// Cancel anula el plan (soft delete: estado ANULADO, nunca borrado físico).
// Anular un plan ya anulado es un no-op exitoso: la operación es idempotente.
// Solo cambia el estado; el usuario registrado en el plan no se toca.
func (uc *DeferredPlanUseCase) Cancel(companyID, userID string, id int64) error {
	plan, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrNotFound
	}
	if plan.Status == entity.PlanStatusCancelled {
		return nil
	}
	plan.Status = entity.PlanStatusCancelled
	plan.UpdatedAt = time.Now()
	return uc.repo.Update(plan)
}

func toPlanResponse(p *entity.DeferredPlan, installationAddress, conceptName string) *dto.DeferredPlanResponse {
	return &dto.DeferredPlanResponse{
		ID:                    p.ID,
		CompanyID:             p.CompanyID,
		InstallationCode:      p.InstallationCode,
		InstallationAddress:   installationAddress,
		ConceptCode:           p.ConceptCode,
		ConceptName:           conceptName,
		OriginalAmount:        p.OriginalAmount,
		InstallmentCount:      p.InstallmentCount,
		InstallmentsRemaining: p.InstallmentsRemaining,
		StartDate:             p.StartDate.Format(dateLayout),
		InstallmentAmount:     p.InstallmentAmount,
		InterestRatePercent:   p.InterestRatePercent,
		Balance:               p.Balance,
		Status:                p.Status,
		Notes:                 p.Notes,
		CreatedBy:             p.CreatedBy,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
