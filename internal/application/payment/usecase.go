package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// InstallationLookup verifica la existencia de la instalación referenciada.
type InstallationLookup interface {
	Exists(companyID, installationCode string) (bool, error)
}

// PlanLookup verifica la existencia del diferido referenciado (opcional).
type PlanLookup interface {
	GetByID(id int64, companyID string) (*entity.DeferredPlan, error)
}

// PaymentUseCase registra recaudos. Es solo registro contable: NO aplica el
// pago al saldo ni a las cuotas pendientes del diferido (eso lo hace un
// proceso externo de cartera).
type PaymentUseCase struct {
	repo          repository.PaymentRepository
	installations InstallationLookup
	plans         PlanLookup
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, installations InstallationLookup, plans PlanLookup) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, installations: installations, plans: plans}
}

// Register registra un recaudo contra una instalación, opcionalmente ligado a
// un diferido de la misma empresa.
func (uc *PaymentUseCase) Register(companyID, userID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InstallationCode == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Method {
	case entity.PaymentMethodCash, entity.PaymentMethodTransfer, entity.PaymentMethodOther:
	default:
		return nil, domain.ErrInvalidInput
	}

	ok, err := uc.installations.Exists(companyID, in.InstallationCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrReference
	}
	if in.DeferredPlanID != nil {
		plan, err := uc.plans.GetByID(*in.DeferredPlanID, companyID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, domain.ErrReference
		}
	}

	now := time.Now()
	p := &entity.Payment{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		InstallationCode: in.InstallationCode,
		DeferredPlanID:   in.DeferredPlanID,
		Amount:           in.Amount,
		Method:           in.Method,
		Reference:        in.Reference,
		ReceivedAt:       now,
		ReceivedBy:       userID,
		CreatedAt:        now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// ListByInstallation lista recaudos de una instalación.
func (uc *PaymentUseCase) ListByInstallation(companyID, installationCode string, limit, offset int) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByInstallation(companyID, installationCode, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:               p.ID,
		CompanyID:        p.CompanyID,
		InstallationCode: p.InstallationCode,
		DeferredPlanID:   p.DeferredPlanID,
		Amount:           p.Amount,
		Method:           p.Method,
		Reference:        p.Reference,
		ReceivedAt:       p.ReceivedAt,
		ReceivedBy:       p.ReceivedBy,
	}
}
