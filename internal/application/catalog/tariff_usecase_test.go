package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuasoft/acueducto-api/internal/application/catalog"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
)

// fakeTariffRepo replica el contrato del repositorio real: Create desactiva la
// tarifa vigente del mismo estrato antes de insertar la nueva.
type fakeTariffRepo struct {
	tariffs []*entity.Tariff
}

func (r *fakeTariffRepo) Create(tariff *entity.Tariff) error {
	for _, t := range r.tariffs {
		if t.CompanyID == tariff.CompanyID && t.Stratum == tariff.Stratum && t.Active {
			t.Active = false
		}
	}
	cp := *tariff
	r.tariffs = append(r.tariffs, &cp)
	return nil
}

func (r *fakeTariffRepo) GetByID(id string) (*entity.Tariff, error) {
	for _, t := range r.tariffs {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTariffRepo) GetActiveByStratum(companyID string, stratum int) (*entity.Tariff, error) {
	for _, t := range r.tariffs {
		if t.CompanyID == companyID && t.Stratum == stratum && t.Active {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTariffRepo) ListByCompany(companyID string) ([]*entity.Tariff, error) {
	out := make([]*entity.Tariff, 0, len(r.tariffs))
	for _, t := range r.tariffs {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func validTariff() dto.CreateTariffRequest {
	return dto.CreateTariffRequest{
		Stratum:            2,
		FixedCharge:        decimal.NewFromInt(8000),
		BasicLimit:         decimal.NewFromInt(20),
		BasicPrice:         decimal.NewFromInt(900),
		ComplementaryLimit: decimal.NewFromInt(40),
		ComplementaryPrice: decimal.NewFromInt(1400),
		SumptuaryPrice:     decimal.NewFromInt(2100),
		ValidFrom:          "2026-01-01",
	}
}

func TestTariffCreate_VersionaLaVigente(t *testing.T) {
	repo := &fakeTariffRepo{}
	uc := catalog.NewTariffUseCase(repo)

	first, err := uc.Create("coop-1", validTariff())
	require.NoError(t, err)

	in := validTariff()
	in.BasicPrice = decimal.NewFromInt(950)
	in.ValidFrom = "2026-07-01"
	second, err := uc.Create("coop-1", in)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// Una sola tarifa vigente por estrato: la nueva versión.
	active, err := uc.ActiveForStratum("coop-1", 2)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.True(t, active.BasicPrice.Equal(decimal.NewFromInt(950)))

	// La anterior queda en el histórico, desactivada.
	all, err := uc.List("coop-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	actives := 0
	for _, tr := range all {
		if tr.Active {
			actives++
		}
	}
	assert.Equal(t, 1, actives)
}

func TestTariffCreate_EstratoInvalido(t *testing.T) {
	uc := catalog.NewTariffUseCase(&fakeTariffRepo{})

	in := validTariff()
	in.Stratum = 7
	_, err := uc.Create("coop-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTariffCreate_RangosInvalidos(t *testing.T) {
	uc := catalog.NewTariffUseCase(&fakeTariffRepo{})

	in := validTariff()
	in.ComplementaryLimit = decimal.NewFromInt(10) // menor que el tope básico
	_, err := uc.Create("coop-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActiveForStratum_SinVigente(t *testing.T) {
	uc := catalog.NewTariffUseCase(&fakeTariffRepo{})

	_, err := uc.ActiveForStratum("coop-1", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
