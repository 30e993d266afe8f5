package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// TariffUseCase casos de uso para la estructura tarifaria por estrato.
type TariffUseCase struct {
	repo repository.TariffRepository
}

// NewTariffUseCase construye el caso de uso.
func NewTariffUseCase(repo repository.TariffRepository) *TariffUseCase {
	return &TariffUseCase{repo: repo}
}

// Create crea una tarifa activa para un estrato. El repositorio desactiva la
// vigente anterior del mismo estrato para que GetActiveByStratum tenga una sola.
func (uc *TariffUseCase) Create(companyID string, in dto.CreateTariffRequest) (*dto.TariffResponse, error) {
	if in.Stratum < 1 || in.Stratum > 6 {
		return nil, domain.ErrInvalidInput
	}
	if in.FixedCharge.IsNegative() || in.BasicPrice.IsNegative() ||
		in.ComplementaryPrice.IsNegative() || in.SumptuaryPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !in.BasicLimit.IsPositive() || !in.ComplementaryLimit.GreaterThan(in.BasicLimit) {
		return nil, domain.ErrInvalidInput
	}
	validFrom, err := time.Parse("2006-01-02", in.ValidFrom)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	tariff := &entity.Tariff{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		Stratum:            in.Stratum,
		FixedCharge:        in.FixedCharge,
		BasicLimit:         in.BasicLimit,
		BasicPrice:         in.BasicPrice,
		ComplementaryLimit: in.ComplementaryLimit,
		ComplementaryPrice: in.ComplementaryPrice,
		SumptuaryPrice:     in.SumptuaryPrice,
		ValidFrom:          validFrom,
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(tariff); err != nil {
		return nil, err
	}
	return toTariffResponse(tariff), nil
}

// List lista las tarifas de la empresa.
func (uc *TariffUseCase) List(companyID string) ([]dto.TariffResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TariffResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTariffResponse(t))
	}
	return items, nil
}

// ActiveForStratum retorna la tarifa vigente del estrato, o ErrNotFound.
func (uc *TariffUseCase) ActiveForStratum(companyID string, stratum int) (*entity.Tariff, error) {
	tariff, err := uc.repo.GetActiveByStratum(companyID, stratum)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, domain.ErrNotFound
	}
	return tariff, nil
}

func toTariffResponse(t *entity.Tariff) *dto.TariffResponse {
	return &dto.TariffResponse{
		ID:                 t.ID,
		CompanyID:          t.CompanyID,
		Stratum:            t.Stratum,
		FixedCharge:        t.FixedCharge,
		BasicLimit:         t.BasicLimit,
		BasicPrice:         t.BasicPrice,
		ComplementaryLimit: t.ComplementaryLimit,
		ComplementaryPrice: t.ComplementaryPrice,
		SumptuaryPrice:     t.SumptuaryPrice,
		ValidFrom:          t.ValidFrom.Format("2006-01-02"),
		Active:             t.Active,
	}
}
