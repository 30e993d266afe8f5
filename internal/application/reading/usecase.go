package reading

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	domainbilling "github.com/acuasoft/acueducto-api/internal/domain/billing"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// TariffProvider es la capacidad que el registro de lecturas necesita del
// módulo de tarifas: la tarifa vigente del estrato de la instalación.
type TariffProvider interface {
	ActiveForStratum(companyID string, stratum int) (*entity.Tariff, error)
}

// InstallationProvider resuelve la instalación por código (estrato incluido).
type InstallationProvider interface {
	GetByCode(companyID, code string) (*entity.Installation, error)
}

// ReadingUseCase registra lecturas de medidor y calcula el cargo del período
// con la tarifa vigente.
type ReadingUseCase struct {
	repo          repository.MeterReadingRepository
	installations InstallationProvider
	tariffs       TariffProvider
}

// NewReadingUseCase construye el caso de uso.
func NewReadingUseCase(repo repository.MeterReadingRepository, installations InstallationProvider, tariffs TariffProvider) *ReadingUseCase {
	return &ReadingUseCase{repo: repo, installations: installations, tariffs: tariffs}
}

// Register registra la lectura de un período. Si no viene lectura anterior se
// toma la última registrada (o cero). Un consumo negativo (lectura actual menor
// que la anterior) se rechaza; un período ya registrado es un duplicado.
func (uc *ReadingUseCase) Register(companyID, userID string, in dto.CreateReadingRequest) (*dto.ReadingResponse, error) {
	if in.InstallationCode == "" || in.Period == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01", in.Period); err != nil {
		return nil, domain.ErrInvalidInput
	}

	installation, err := uc.installations.GetByCode(companyID, in.InstallationCode)
	if err != nil {
		return nil, err
	}

	if existing, _ := uc.repo.GetByPeriod(companyID, in.InstallationCode, in.Period); existing != nil {
		return nil, domain.ErrDuplicate
	}

	previous := decimal.Zero
	if in.PreviousReading != nil {
		previous = *in.PreviousReading
	} else if latest, _ := uc.repo.GetLatest(companyID, in.InstallationCode); latest != nil {
		previous = latest.CurrentReading
	}

	consumption := in.CurrentReading.Sub(previous)
	if consumption.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	tariff, err := uc.tariffs.ActiveForStratum(companyID, installation.Stratum)
	if err != nil {
		// Sin tarifa vigente para el estrato no hay cómo valorar el consumo:
		// la referencia no resuelve, igual que una instalación inexistente.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrReference
		}
		return nil, err
	}
	charge, err := domainbilling.ConsumptionCharge(consumption, tariff)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	mr := &entity.MeterReading{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		InstallationCode: in.InstallationCode,
		Period:           in.Period,
		PreviousReading:  previous,
		CurrentReading:   in.CurrentReading,
		Consumption:      consumption,
		Charge:           charge,
		ReadAt:           now,
		ReadBy:           userID,
		CreatedAt:        now,
	}
	if err := uc.repo.Create(mr); err != nil {
		return nil, err
	}
	return toReadingResponse(mr), nil
}

// ListByInstallation lista lecturas de una instalación con paginación.
func (uc *ReadingUseCase) ListByInstallation(companyID, installationCode string, limit, offset int) (*dto.ReadingListResponse, error) {
	list, err := uc.repo.ListByInstallation(companyID, installationCode, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReadingResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReadingResponse(r))
	}
	return &dto.ReadingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toReadingResponse(r *entity.MeterReading) *dto.ReadingResponse {
	return &dto.ReadingResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		InstallationCode: r.InstallationCode,
		Period:           r.Period,
		PreviousReading:  r.PreviousReading,
		CurrentReading:   r.CurrentReading,
		Consumption:      r.Consumption,
		Charge:           r.Charge,
		ReadAt:           r.ReadAt,
		ReadBy:           r.ReadBy,
	}
}
