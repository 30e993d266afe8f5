package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// WorkerUseCase casos de uso CRUD para trabajadores.
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create crea un trabajador. El documento es único por empresa.
func (uc *WorkerUseCase) Create(companyID string, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if in.DocumentID == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.BaseSalary.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	hiredAt, err := time.Parse("2006-01-02", in.HiredAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndDocument(companyID, in.DocumentID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	documentType := in.DocumentType
	if documentType == "" {
		documentType = "CC"
	}
	workerType := in.WorkerType
	if workerType == "" {
		workerType = entity.WorkerTypeDependent
	}
	now := time.Now()
	worker := &entity.Worker{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		DocumentType: documentType,
		DocumentID:   in.DocumentID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		JobTitle:     in.JobTitle,
		WorkerType:   workerType,
		BaseSalary:   in.BaseSalary,
		Active:       true,
		HiredAt:      hiredAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// List lista trabajadores de la empresa con paginación.
func (uc *WorkerUseCase) List(companyID string, limit, offset int) ([]dto.WorkerResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return items, nil
}

// Deactivate retira un trabajador de la nómina (no se borra).
func (uc *WorkerUseCase) Deactivate(companyID, id string) error {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if worker == nil || worker.CompanyID != companyID {
		return domain.ErrNotFound
	}
	worker.Active = false
	worker.UpdatedAt = time.Now()
	return uc.repo.Update(worker)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:           w.ID,
		CompanyID:    w.CompanyID,
		DocumentType: w.DocumentType,
		DocumentID:   w.DocumentID,
		FirstName:    w.FirstName,
		LastName:     w.LastName,
		JobTitle:     w.JobTitle,
		WorkerType:   w.WorkerType,
		BaseSalary:   w.BaseSalary,
		Active:       w.Active,
		HiredAt:      w.HiredAt.Format("2006-01-02"),
	}
}
