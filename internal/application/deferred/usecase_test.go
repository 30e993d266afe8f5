package deferred_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/application/deferred"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (sin base de datos)
// ──────────────────────────────────────────────────────────────────────────────

type fakePlanRepo struct {
	seq   int64
	plans map[int64]*entity.DeferredPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[int64]*entity.DeferredPlan{}}
}

func (r *fakePlanRepo) Create(plan *entity.DeferredPlan) error {
	r.seq++
	plan.ID = r.seq
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByID(id int64, companyID string) (*entity.DeferredPlan, error) {
	p, ok := r.plans[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) ListByCompany(companyID string, filter repository.DeferredPlanFilter) ([]*entity.DeferredPlanView, error) {
	var out []*entity.DeferredPlanView
	for _, p := range r.plans {
		if p.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.InstallationCode != "" && p.InstallationCode != filter.InstallationCode {
			continue
		}
		out = append(out, &entity.DeferredPlanView{DeferredPlan: *p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakePlanRepo) Update(plan *entity.DeferredPlan) error {
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

type fakeInstallations struct{ codes map[string]bool }

func (f *fakeInstallations) Exists(companyID, code string) (bool, error) {
	return f.codes[companyID+"/"+code], nil
}

type fakeConcepts struct {
	exists   map[string]bool
	eligible map[string]bool
}

func (f *fakeConcepts) Exists(companyID, code string) (bool, error) {
	return f.exists[companyID+"/"+code], nil
}

func (f *fakeConcepts) IsDeferredEligible(companyID, code string) (bool, error) {
	return f.eligible[companyID+"/"+code], nil
}

const (
	tenantA = "empresa-a"
	tenantB = "empresa-b"
	actor   = "user-1"
)

func newUseCase() (*deferred.DeferredPlanUseCase, *fakePlanRepo) {
	repo := newFakePlanRepo()
	installations := &fakeInstallations{codes: map[string]bool{
		tenantA + "/INST-001": true,
		tenantB + "/INST-900": true,
	}}
	concepts := &fakeConcepts{
		exists: map[string]bool{
			tenantA + "/MAT": true, // matrícula, diferible
			tenantA + "/REC": true, // reconexión, no diferible
			tenantB + "/MAT": true,
		},
		eligible: map[string]bool{
			tenantA + "/MAT": true,
			tenantB + "/MAT": true,
		},
	}
	return deferred.NewDeferredPlanUseCase(repo, installations, concepts), repo
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func validCreate() dto.CreateDeferredPlanRequest {
	return dto.CreateDeferredPlanRequest{
		InstallationCode: "INST-001",
		ConceptCode:      "MAT",
		OriginalAmount:   d("1000"),
		InstallmentCount: 10,
		StartDate:        "2026-02-01",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinInteres(t *testing.T) {
	uc, _ := newUseCase()
	resp, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	assert.True(t, resp.InstallmentAmount.Equal(d("100")), "cuota %s", resp.InstallmentAmount)
	assert.Equal(t, 10, resp.InstallmentsRemaining)
	assert.True(t, resp.Balance.Equal(d("1000")))
	assert.Equal(t, entity.PlanStatusPending, resp.Status)
	assert.Equal(t, actor, resp.CreatedBy)
	assert.Equal(t, tenantA, resp.CompanyID)
}

func TestCreate_ConInteresPlano(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	rate := d("5")
	in.InterestRatePercent = &rate

	resp, err := uc.Create(tenantA, actor, in)
	require.NoError(t, err)
	// (1000 + 50) / 10 = 105
	assert.True(t, resp.InstallmentAmount.Equal(d("105")), "cuota %s", resp.InstallmentAmount)
}

func TestCreate_CuotaExplicitaSeRespeta(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	cuota := d("120.50")
	in.InstallmentAmount = &cuota

	resp, err := uc.Create(tenantA, actor, in)
	require.NoError(t, err)
	assert.True(t, resp.InstallmentAmount.Equal(cuota))
}

func TestCreate_CuotaExplicitaCeroSeRecalcula(t *testing.T) {
	// El defecto histórico: una cuota en 0 enviada por el caller no debe
	// persistirse; se recalcula con la fórmula.
	uc, _ := newUseCase()
	in := validCreate()
	in.InstallmentAmount = &decimal.Zero

	resp, err := uc.Create(tenantA, actor, in)
	require.NoError(t, err)
	assert.True(t, resp.InstallmentAmount.Equal(d("100")))
}

func TestCreate_MontoInvalido(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	in.OriginalAmount = decimal.Zero
	_, err := uc.Create(tenantA, actor, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CuotasInvalidas(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	in.InstallmentCount = 0
	_, err := uc.Create(tenantA, actor, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_InstalacionInexistente(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	in.InstallationCode = "NO-EXISTE"
	_, err := uc.Create(tenantA, actor, in)
	assert.ErrorIs(t, err, domain.ErrReference)
}

func TestCreate_ConceptoInexistente(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	in.ConceptCode = "NO-EXISTE"
	_, err := uc.Create(tenantA, actor, in)
	assert.ErrorIs(t, err, domain.ErrReference)
}

func TestCreate_ConceptoNoDiferible(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	in.ConceptCode = "REC"
	_, err := uc.Create(tenantA, actor, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DuplicadosPermitidos(t *testing.T) {
	// No hay unicidad instalación+concepto: dos planes simultáneos son válidos.
	uc, _ := newUseCase()
	_, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)
	_, err = uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.GetByID(tenantA, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_OtraEmpresaEsNotFound(t *testing.T) {
	uc, _ := newUseCase()
	resp, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	_, err = uc.GetByID(tenantB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrdenDescendentePorID(t *testing.T) {
	uc, _ := newUseCase()
	first, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)
	second, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	list, err := uc.List(tenantA, repository.DeferredPlanFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, second.ID, list.Items[0].ID)
	assert.Equal(t, first.ID, list.Items[1].ID)
}

func TestList_FiltraPorEstado(t *testing.T) {
	uc, _ := newUseCase()
	keep, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)
	cancelled, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(tenantA, actor, cancelled.ID))

	list, err := uc.List(tenantA, repository.DeferredPlanFilter{Status: entity.PlanStatusPending})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, keep.ID, list.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PatchVacioEsNoOp(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	updated, err := uc.Update(tenantA, actor, created.ID, dto.UpdateDeferredPlanRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, updated, "un patch vacío debe devolver el registro idéntico")
}

func TestUpdate_SoloCamposPresentes(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	notes := "refinanciado por acuerdo de junta"
	updated, err := uc.Update(tenantA, actor, created.ID, dto.UpdateDeferredPlanRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, updated.Notes)
	// El resto queda intacto, en particular la cuota NO se recalcula.
	assert.True(t, updated.InstallmentAmount.Equal(created.InstallmentAmount))
	assert.True(t, updated.OriginalAmount.Equal(created.OriginalAmount))
	assert.Equal(t, created.InstallmentsRemaining, updated.InstallmentsRemaining)
}

func TestUpdate_MontoSinRecalculoDeCuota(t *testing.T) {
	// El recálculo de la cuota solo ocurre en Create; cambiar el monto por
	// patch no la toca.
	uc, _ := newUseCase()
	created, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	amount := d("2000")
	updated, err := uc.Update(tenantA, actor, created.ID, dto.UpdateDeferredPlanRequest{OriginalAmount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.OriginalAmount.Equal(amount))
	assert.True(t, updated.InstallmentAmount.Equal(created.InstallmentAmount))
}

func TestUpdate_CuotasPendientesSoloDisminuyen(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	less := 9
	updated, err := uc.Update(tenantA, actor, created.ID, dto.UpdateDeferredPlanRequest{InstallmentsRemaining: &less})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.InstallmentsRemaining)

	more := 10
	_, err = uc.Update(tenantA, actor, created.ID, dto.UpdateDeferredPlanRequest{InstallmentsRemaining: &more})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	notes := "x"
	_, err := uc.Update(tenantA, actor, 404, dto.UpdateDeferredPlanRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_SoloCambiaElEstado(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	// Anula otro usuario distinto al creador: el estado es lo único que cambia.
	require.NoError(t, uc.Cancel(tenantA, "otro-tesorero", created.ID))

	got, err := uc.GetByID(tenantA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusCancelled, got.Status)
	assert.Equal(t, created.CreatedBy, got.CreatedBy, "anular no debe reestampar el usuario")
	assert.True(t, got.OriginalAmount.Equal(created.OriginalAmount))
	assert.True(t, got.InstallmentAmount.Equal(created.InstallmentAmount))
	assert.True(t, got.Balance.Equal(created.Balance))
	assert.Equal(t, created.InstallmentsRemaining, got.InstallmentsRemaining)
	assert.Equal(t, created.StartDate, got.StartDate)
	assert.Equal(t, created.Notes, got.Notes)
}

func TestCancel_EsIdempotente(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(tenantA, actor, validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(tenantA, actor, created.ID))
	require.NoError(t, uc.Cancel(tenantA, actor, created.ID), "re-anular debe ser no-op exitoso")

	got, err := uc.GetByID(tenantA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusCancelled, got.Status)
}

func TestCancel_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	err := uc.Cancel(tenantA, actor, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Schedule
// ──────────────────────────────────────────────────────────────────────────────

func TestSchedule_ProyectaElCalendario(t *testing.T) {
	uc, _ := newUseCase()
	in := validCreate()
	in.OriginalAmount = d("100")
	in.InstallmentCount = 3
	created, err := uc.Create(tenantA, actor, in)
	require.NoError(t, err)

	resp, err := uc.Schedule(tenantA, created.ID)
	require.NoError(t, err)
	require.Len(t, resp.Schedule, 3)
	assert.Equal(t, "2026-03-01", resp.Schedule[0].DueDate)

	sum := decimal.Zero
	for _, it := range resp.Schedule {
		sum = sum.Add(it.Amount)
	}
	assert.True(t, sum.Equal(d("100")), "el calendario debe sumar el total financiado")
}
