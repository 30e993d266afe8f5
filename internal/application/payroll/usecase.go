package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// Porcentajes de deducción a cargo del trabajador (salud y pensión).
var deductionRate = decimal.NewFromFloat(0.04)

// PayrollUseCase liquida períodos de nómina y los envía como nómina
// electrónica a la DIAN.
type PayrollUseCase struct {
	txRunner    PayrollTxRunner
	payrollRepo repository.PayrollRepository
	workerRepo  repository.WorkerRepository
	companyRepo repository.CompanyRepository
	submitter   Submitter
	softwareID  string
	environment string
}

// NewPayrollUseCase construye el caso de uso. submitter puede ser nil en
// entornos sin integración DIAN; SubmitToDIAN retornará ErrConflict.
func NewPayrollUseCase(
	txRunner PayrollTxRunner,
	payrollRepo repository.PayrollRepository,
	workerRepo repository.WorkerRepository,
	companyRepo repository.CompanyRepository,
	submitter Submitter,
	softwareID, environment string,
) *PayrollUseCase {
	return &PayrollUseCase{
		txRunner:    txRunner,
		payrollRepo: payrollRepo,
		workerRepo:  workerRepo,
		companyRepo: companyRepo,
		submitter:   submitter,
		softwareID:  softwareID,
		environment: environment,
	}
}

// Liquidate liquida el período para todos los trabajadores activos: salario
// mensual completo (30 días), deducciones de salud y pensión del 4 % cada una,
// redondeadas a 2 decimales. Período y entradas se guardan en una transacción.
func (uc *PayrollUseCase) Liquidate(ctx context.Context, companyID, userID string, in dto.LiquidatePayrollRequest) (*dto.PayrollPeriodResponse, error) {
	if _, err := time.Parse("2006-01", in.Period); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.payrollRepo.GetPeriodByCompanyAndPeriod(companyID, in.Period); existing != nil {
		return nil, domain.ErrDuplicate
	}
	workers, err := uc.workerRepo.ListActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	period := &entity.PayrollPeriod{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Period:     in.Period,
		DIANStatus: entity.PayrollStatusPending,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	entries := make([]*entity.PayrollEntry, 0, len(workers))
	totalEarned, totalDeducted := decimal.Zero, decimal.Zero
	for _, w := range workers {
		earned := w.BaseSalary.Round(2)
		health := earned.Mul(deductionRate).Round(2)
		pension := earned.Mul(deductionRate).Round(2)
		net := earned.Sub(health).Sub(pension)
		entries = append(entries, &entity.PayrollEntry{
			ID:               uuid.New().String(),
			PayrollPeriodID:  period.ID,
			WorkerID:         w.ID,
			DaysWorked:       30,
			Earned:           earned,
			HealthDeduction:  health,
			PensionDeduction: pension,
			Net:              net,
			CreatedAt:        now,
		})
		totalEarned = totalEarned.Add(earned)
		totalDeducted = totalDeducted.Add(health).Add(pension)
	}
	period.TotalEarned = totalEarned
	period.TotalDeducted = totalDeducted
	period.TotalNet = totalEarned.Sub(totalDeducted)

	err = uc.txRunner.RunPayroll(ctx, func(repo repository.PayrollRepository) error {
		if err := repo.CreatePeriod(period); err != nil {
			return err
		}
		for _, e := range entries {
			if err := repo.CreateEntry(e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toPeriodResponse(period, entries), nil
}

// GetPeriod retorna un período con sus entradas.
func (uc *PayrollUseCase) GetPeriod(companyID, id string) (*dto.PayrollPeriodResponse, error) {
	period, err := uc.payrollRepo.GetPeriodByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.payrollRepo.ListEntriesByPeriod(period.ID)
	if err != nil {
		return nil, err
	}
	return uc.toPeriodResponse(period, entries), nil
}

// ListPeriods lista los períodos de la empresa.
func (uc *PayrollUseCase) ListPeriods(companyID string, limit, offset int) ([]dto.PayrollPeriodResponse, error) {
	periods, err := uc.payrollRepo.ListPeriodsByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PayrollPeriodResponse, 0, len(periods))
	for _, p := range periods {
		items = append(items, *uc.toPeriodResponse(p, nil))
	}
	return items, nil
}

// SubmitToDIAN construye el documento del período y lo envía al servicio de
// recepción. El estado queda ACEPTADO o RECHAZADO según la respuesta.
// Un período ya aceptado no se reenvía.
func (uc *PayrollUseCase) SubmitToDIAN(ctx context.Context, companyID, periodID string) (*dto.PayrollPeriodResponse, error) {
	if uc.submitter == nil {
		return nil, domain.ErrConflict
	}
	period, err := uc.payrollRepo.GetPeriodByID(periodID, companyID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	if period.DIANStatus == entity.PayrollStatusAccepted {
		return nil, domain.ErrConflict
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.payrollRepo.ListEntriesByPeriod(period.ID)
	if err != nil {
		return nil, err
	}

	doc, err := uc.buildDocument(company, period, entries)
	if err != nil {
		return nil, err
	}
	result, err := uc.submitter.Submit(ctx, doc)
	if err != nil {
		return nil, err
	}
	if result.Accepted {
		period.DIANStatus = entity.PayrollStatusAccepted
	} else {
		period.DIANStatus = entity.PayrollStatusRejected
	}
	period.DIANTrackID = result.TrackID
	period.UpdatedAt = time.Now()
	if err := uc.payrollRepo.UpdatePeriod(period); err != nil {
		return nil, err
	}
	return uc.toPeriodResponse(period, entries), nil
}

// buildDocument mapea el período liquidado al JSON que espera la recepción DIAN.
// Los montos van como string con 2 decimales fijos.
func (uc *PayrollUseCase) buildDocument(company *entity.Company, period *entity.PayrollPeriod, entries []*entity.PayrollEntry) (*Document, error) {
	doc := &Document{
		SoftwareID:  uc.softwareID,
		Environment: uc.environment,
		EmployerNIT: company.NIT,
		Period:      period.Period,
		Workers:     make([]DocumentEntry, 0, len(entries)),
	}
	for _, e := range entries {
		worker, err := uc.workerRepo.GetByID(e.WorkerID)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, domain.ErrReference
		}
		doc.Workers = append(doc.Workers, DocumentEntry{
			DocumentType: worker.DocumentType,
			DocumentID:   worker.DocumentID,
			WorkerType:   worker.WorkerType,
			DaysWorked:   e.DaysWorked,
			Earned:       e.Earned.StringFixed(2),
			Health:       e.HealthDeduction.StringFixed(2),
			Pension:      e.PensionDeduction.StringFixed(2),
			Net:          e.Net.StringFixed(2),
		})
	}
	return doc, nil
}

func (uc *PayrollUseCase) toPeriodResponse(p *entity.PayrollPeriod, entries []*entity.PayrollEntry) *dto.PayrollPeriodResponse {
	resp := &dto.PayrollPeriodResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Period:        p.Period,
		TotalEarned:   p.TotalEarned,
		TotalDeducted: p.TotalDeducted,
		TotalNet:      p.TotalNet,
		DIANStatus:    p.DIANStatus,
		DIANTrackID:   p.DIANTrackID,
		CreatedAt:     p.CreatedAt,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.PayrollEntryResponse{
			ID:               e.ID,
			WorkerID:         e.WorkerID,
			DaysWorked:       e.DaysWorked,
			Earned:           e.Earned,
			HealthDeduction:  e.HealthDeduction,
			PensionDeduction: e.PensionDeduction,
			Net:              e.Net,
		})
	}
	return resp
}
