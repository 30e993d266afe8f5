package reading_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/application/reading"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReadingRepo struct {
	byPeriod map[string]*entity.MeterReading // clave período
	latest   *entity.MeterReading
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{byPeriod: map[string]*entity.MeterReading{}}
}

func (r *fakeReadingRepo) Create(mr *entity.MeterReading) error {
	cp := *mr
	r.byPeriod[mr.Period] = &cp
	r.latest = &cp
	return nil
}

func (r *fakeReadingRepo) GetByID(id string) (*entity.MeterReading, error) { return nil, nil }

func (r *fakeReadingRepo) GetLatest(companyID, installationCode string) (*entity.MeterReading, error) {
	return r.latest, nil
}

func (r *fakeReadingRepo) GetByPeriod(companyID, installationCode, period string) (*entity.MeterReading, error) {
	return r.byPeriod[period], nil
}

func (r *fakeReadingRepo) ListByInstallation(companyID, installationCode string, limit, offset int) ([]*entity.MeterReading, error) {
	out := make([]*entity.MeterReading, 0, len(r.byPeriod))
	for _, mr := range r.byPeriod {
		out = append(out, mr)
	}
	return out, nil
}

type fakeInstallations struct {
	installation *entity.Installation
}

func (f *fakeInstallations) GetByCode(companyID, code string) (*entity.Installation, error) {
	if f.installation == nil || f.installation.Code != code {
		return nil, domain.ErrReference
	}
	return f.installation, nil
}

type fakeTariffs struct {
	tariff *entity.Tariff
}

func (f *fakeTariffs) ActiveForStratum(companyID string, stratum int) (*entity.Tariff, error) {
	if f.tariff == nil {
		return nil, domain.ErrNotFound
	}
	return f.tariff, nil
}

func newUseCase(tariff *entity.Tariff) (*reading.ReadingUseCase, *fakeReadingRepo) {
	repo := newFakeReadingRepo()
	installations := &fakeInstallations{installation: &entity.Installation{
		ID:        "inst-1",
		CompanyID: "coop-1",
		Code:      "CT-0042",
		Stratum:   2,
		Status:    "ACTIVA",
	}}
	uc := reading.NewReadingUseCase(repo, installations, &fakeTariffs{tariff: tariff})
	return uc, repo
}

func basicTariff() *entity.Tariff {
	return &entity.Tariff{
		ID:                 "tar-1",
		CompanyID:          "coop-1",
		Stratum:            2,
		FixedCharge:        decimal.NewFromInt(8000),
		BasicLimit:         decimal.NewFromInt(20),
		BasicPrice:         decimal.NewFromInt(900),
		ComplementaryLimit: decimal.NewFromInt(40),
		ComplementaryPrice: decimal.NewFromInt(1400),
		SumptuaryPrice:     decimal.NewFromInt(2100),
		Active:             true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CalculaConsumoYCargo(t *testing.T) {
	uc, _ := newUseCase(basicTariff())

	previous := decimal.NewFromInt(100)
	got, err := uc.Register("coop-1", "lect-1", dto.CreateReadingRequest{
		InstallationCode: "CT-0042",
		Period:           "2026-03",
		CurrentReading:   decimal.NewFromInt(115),
		PreviousReading:  &previous,
	})
	require.NoError(t, err)

	// 15 m³, todo en rango básico: 8000 + 15*900.
	assert.True(t, got.Consumption.Equal(decimal.NewFromInt(15)), "consumo %s", got.Consumption)
	assert.True(t, got.Charge.Equal(decimal.NewFromInt(21500)), "cargo %s", got.Charge)
	assert.Equal(t, "lect-1", got.ReadBy)
}

func TestRegister_SinTarifaVigenteEsBadReference(t *testing.T) {
	uc, _ := newUseCase(nil)

	got, err := uc.Register("coop-1", "lect-1", dto.CreateReadingRequest{
		InstallationCode: "CT-0042",
		Period:           "2026-03",
		CurrentReading:   decimal.NewFromInt(115),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrReference, "sin tarifa del estrato la referencia no resuelve")
}

func TestRegister_InstalacionInexistente(t *testing.T) {
	uc, _ := newUseCase(basicTariff())

	_, err := uc.Register("coop-1", "lect-1", dto.CreateReadingRequest{
		InstallationCode: "NO-EXISTE",
		Period:           "2026-03",
		CurrentReading:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrReference)
}

func TestRegister_ConsumoNegativoRechazado(t *testing.T) {
	uc, _ := newUseCase(basicTariff())

	previous := decimal.NewFromInt(200)
	_, err := uc.Register("coop-1", "lect-1", dto.CreateReadingRequest{
		InstallationCode: "CT-0042",
		Period:           "2026-03",
		CurrentReading:   decimal.NewFromInt(115),
		PreviousReading:  &previous,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PeriodoDuplicado(t *testing.T) {
	uc, _ := newUseCase(basicTariff())

	in := dto.CreateReadingRequest{
		InstallationCode: "CT-0042",
		Period:           "2026-03",
		CurrentReading:   decimal.NewFromInt(115),
	}
	_, err := uc.Register("coop-1", "lect-1", in)
	require.NoError(t, err)

	_, err = uc.Register("coop-1", "lect-1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_AnteriorDesdeUltimaLectura(t *testing.T) {
	uc, _ := newUseCase(basicTariff())

	_, err := uc.Register("coop-1", "lect-1", dto.CreateReadingRequest{
		InstallationCode: "CT-0042",
		Period:           "2026-03",
		CurrentReading:   decimal.NewFromInt(115),
	})
	require.NoError(t, err)

	got, err := uc.Register("coop-1", "lect-1", dto.CreateReadingRequest{
		InstallationCode: "CT-0042",
		Period:           "2026-04",
		CurrentReading:   decimal.NewFromInt(130),
	})
	require.NoError(t, err)
	assert.True(t, got.PreviousReading.Equal(decimal.NewFromInt(115)), "anterior %s", got.PreviousReading)
	assert.True(t, got.Consumption.Equal(decimal.NewFromInt(15)), "consumo %s", got.Consumption)
}
