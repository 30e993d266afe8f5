package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/application/payroll"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePayrollRepo struct {
	periods map[string]*entity.PayrollPeriod
	entries map[string][]*entity.PayrollEntry
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		periods: map[string]*entity.PayrollPeriod{},
		entries: map[string][]*entity.PayrollEntry{},
	}
}

func (r *fakePayrollRepo) CreatePeriod(p *entity.PayrollPeriod) error {
	cp := *p
	r.periods[p.ID] = &cp
	return nil
}

func (r *fakePayrollRepo) CreateEntry(e *entity.PayrollEntry) error {
	cp := *e
	r.entries[e.PayrollPeriodID] = append(r.entries[e.PayrollPeriodID], &cp)
	return nil
}

func (r *fakePayrollRepo) GetPeriodByID(id, companyID string) (*entity.PayrollPeriod, error) {
	p, ok := r.periods[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePayrollRepo) GetPeriodByCompanyAndPeriod(companyID, period string) (*entity.PayrollPeriod, error) {
	for _, p := range r.periods {
		if p.CompanyID == companyID && p.Period == period {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePayrollRepo) ListPeriodsByCompany(companyID string, limit, offset int) ([]*entity.PayrollPeriod, error) {
	var out []*entity.PayrollPeriod
	for _, p := range r.periods {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) ListEntriesByPeriod(periodID string) ([]*entity.PayrollEntry, error) {
	return r.entries[periodID], nil
}

func (r *fakePayrollRepo) UpdatePeriod(p *entity.PayrollPeriod) error {
	cp := *p
	r.periods[p.ID] = &cp
	return nil
}

type fakeTxRunner struct{ repo repository.PayrollRepository }

func (r *fakeTxRunner) RunPayroll(_ context.Context, fn func(repo repository.PayrollRepository) error) error {
	return fn(r.repo)
}

type fakeWorkerRepo struct{ workers map[string]*entity.Worker }

func (r *fakeWorkerRepo) Create(*entity.Worker) error { return nil }
func (r *fakeWorkerRepo) Update(*entity.Worker) error { return nil }
func (r *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	return r.workers[id], nil
}
func (r *fakeWorkerRepo) GetByCompanyAndDocument(string, string) (*entity.Worker, error) {
	return nil, nil
}
func (r *fakeWorkerRepo) ListActiveByCompany(companyID string) ([]*entity.Worker, error) {
	var out []*entity.Worker
	for _, w := range r.workers {
		if w.CompanyID == companyID && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}
func (r *fakeWorkerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Worker, error) {
	return r.ListActiveByCompany(companyID)
}

type fakeCompanyRepo struct{ company *entity.Company }

func (r *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error { return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if r.company != nil && r.company.ID == id {
		return r.company, nil
	}
	return nil, nil
}
func (r *fakeCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type fakeSubmitter struct {
	lastDoc *payroll.Document
	result  payroll.SubmitResult
}

func (s *fakeSubmitter) Submit(_ context.Context, doc *payroll.Document) (*payroll.SubmitResult, error) {
	s.lastDoc = doc
	res := s.result
	return &res, nil
}

// ──────────────────────────────────────────────────────────────────────────────

const companyID = "coop-1"

func newUseCase(submitter payroll.Submitter) (*payroll.PayrollUseCase, *fakePayrollRepo) {
	repo := newFakePayrollRepo()
	workers := &fakeWorkerRepo{workers: map[string]*entity.Worker{
		"w1": {
			ID: "w1", CompanyID: companyID, DocumentType: "CC", DocumentID: "1012345678",
			FirstName: "Luz", LastName: "Mora", WorkerType: entity.WorkerTypeDependent,
			BaseSalary: decimal.NewFromInt(1_300_000), Active: true,
			HiredAt: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		"w2": {
			ID: "w2", CompanyID: companyID, DocumentType: "CC", DocumentID: "79456123",
			FirstName: "Jairo", LastName: "Pineda", WorkerType: entity.WorkerTypeDependent,
			BaseSalary: decimal.NewFromInt(2_000_000), Active: true,
			HiredAt: time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	companies := &fakeCompanyRepo{company: &entity.Company{ID: companyID, Name: "Acueducto Vereda El Roble", NIT: "901234567"}}
	uc := payroll.NewPayrollUseCase(&fakeTxRunner{repo: repo}, repo, workers, companies, submitter, "sw-001", "2")
	return uc, repo
}

func TestLiquidate_DeduccionesDelCuatroPorciento(t *testing.T) {
	uc, _ := newUseCase(nil)
	resp, err := uc.Liquidate(context.Background(), companyID, "tesorero-1", dto.LiquidatePayrollRequest{Period: "2026-03"})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)

	// Total devengado: 1.300.000 + 2.000.000 = 3.300.000
	assert.True(t, resp.TotalEarned.Equal(decimal.NewFromInt(3_300_000)), "devengado %s", resp.TotalEarned)
	// Deducciones: 8% del devengado = 264.000
	assert.True(t, resp.TotalDeducted.Equal(decimal.NewFromInt(264_000)), "deducido %s", resp.TotalDeducted)
	assert.True(t, resp.TotalNet.Equal(decimal.NewFromInt(3_036_000)))
	assert.Equal(t, entity.PayrollStatusPending, resp.DIANStatus)

	for _, e := range resp.Entries {
		expected := e.Earned.Mul(decimal.NewFromFloat(0.04)).Round(2)
		assert.True(t, e.HealthDeduction.Equal(expected))
		assert.True(t, e.PensionDeduction.Equal(expected))
	}
}

func TestLiquidate_PeriodoDuplicado(t *testing.T) {
	uc, _ := newUseCase(nil)
	_, err := uc.Liquidate(context.Background(), companyID, "u", dto.LiquidatePayrollRequest{Period: "2026-03"})
	require.NoError(t, err)
	_, err = uc.Liquidate(context.Background(), companyID, "u", dto.LiquidatePayrollRequest{Period: "2026-03"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLiquidate_PeriodoInvalido(t *testing.T) {
	uc, _ := newUseCase(nil)
	_, err := uc.Liquidate(context.Background(), companyID, "u", dto.LiquidatePayrollRequest{Period: "marzo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitToDIAN_DocumentoYEstado(t *testing.T) {
	submitter := &fakeSubmitter{result: payroll.SubmitResult{Accepted: true, TrackID: "track-99"}}
	uc, _ := newUseCase(submitter)

	created, err := uc.Liquidate(context.Background(), companyID, "u", dto.LiquidatePayrollRequest{Period: "2026-03"})
	require.NoError(t, err)

	resp, err := uc.SubmitToDIAN(context.Background(), companyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PayrollStatusAccepted, resp.DIANStatus)
	assert.Equal(t, "track-99", resp.DIANTrackID)

	require.NotNil(t, submitter.lastDoc)
	assert.Equal(t, "901234567", submitter.lastDoc.EmployerNIT)
	assert.Equal(t, "2026-03", submitter.lastDoc.Period)
	assert.Equal(t, "sw-001", submitter.lastDoc.SoftwareID)
	require.Len(t, submitter.lastDoc.Workers, 2)
	for _, w := range submitter.lastDoc.Workers {
		assert.NotEmpty(t, w.DocumentID)
		assert.NotEmpty(t, w.Earned)
	}
}

func TestSubmitToDIAN_RechazoYReenvio(t *testing.T) {
	submitter := &fakeSubmitter{result: payroll.SubmitResult{Accepted: false, TrackID: "track-1", Message: "NIT no habilitado"}}
	uc, _ := newUseCase(submitter)

	created, err := uc.Liquidate(context.Background(), companyID, "u", dto.LiquidatePayrollRequest{Period: "2026-03"})
	require.NoError(t, err)

	resp, err := uc.SubmitToDIAN(context.Background(), companyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PayrollStatusRejected, resp.DIANStatus)

	// Un período rechazado sí puede reenviarse.
	submitter.result = payroll.SubmitResult{Accepted: true, TrackID: "track-2"}
	resp, err = uc.SubmitToDIAN(context.Background(), companyID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PayrollStatusAccepted, resp.DIANStatus)

	// Uno aceptado no.
	_, err = uc.SubmitToDIAN(context.Background(), companyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubmitToDIAN_SinIntegracion(t *testing.T) {
	uc, _ := newUseCase(nil)
	created, err := uc.Liquidate(context.Background(), companyID, "u", dto.LiquidatePayrollRequest{Period: "2026-03"})
	require.NoError(t, err)
	_, err = uc.SubmitToDIAN(context.Background(), companyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
