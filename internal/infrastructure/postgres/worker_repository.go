package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL
// (tabla `trabajadores`).
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un trabajador. Documento único por empresa.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO trabajadores (id, company_id, document_type, document_id, first_name, last_name,
			job_title, worker_type, base_salary, active, hired_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.CompanyID, worker.DocumentType, worker.DocumentID, worker.FirstName, worker.LastName,
		worker.JobTitle, worker.WorkerType, worker.BaseSalary, worker.Active, worker.HiredAt,
		worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := selectWorker + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCompanyAndDocument obtiene un trabajador por empresa y documento.
func (r *WorkerRepo) GetByCompanyAndDocument(companyID, documentID string) (*entity.Worker, error) {
	query := selectWorker + ` WHERE company_id = $1 AND document_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, documentID))
}

// ListActiveByCompany lista los trabajadores activos de la empresa (liquidación de nómina).
func (r *WorkerRepo) ListActiveByCompany(companyID string) ([]*entity.Worker, error) {
	query := selectWorker + ` WHERE company_id = $1 AND active ORDER BY last_name, first_name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores activos: %w", err)
	}
	return r.collect(rows)
}

// ListByCompany lista trabajadores por empresa con paginación.
func (r *WorkerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Worker, error) {
	query := selectWorker + ` WHERE company_id = $1 ORDER BY last_name, first_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	return r.collect(rows)
}

// Update actualiza un trabajador existente.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE trabajadores SET first_name = $2, last_name = $3, job_title = $4, worker_type = $5,
			base_salary = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.FirstName, worker.LastName, worker.JobTitle, worker.WorkerType,
		worker.BaseSalary, worker.Active, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trabajador: %w", err)
	}
	return nil
}

const selectWorker = `
	SELECT id, company_id, document_type, document_id, first_name, last_name,
		job_title, worker_type, base_salary, active, hired_at, created_at, updated_at
	FROM trabajadores`

func (r *WorkerRepo) scanOne(row pgx.Row) (*entity.Worker, error) {
	var w entity.Worker
	err := row.Scan(&w.ID, &w.CompanyID, &w.DocumentType, &w.DocumentID, &w.FirstName, &w.LastName,
		&w.JobTitle, &w.WorkerType, &w.BaseSalary, &w.Active, &w.HiredAt, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador: %w", err)
	}
	return &w, nil
}

func (r *WorkerRepo) collect(rows pgx.Rows) ([]*entity.Worker, error) {
	defer rows.Close()
	var items []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.DocumentType, &w.DocumentID, &w.FirstName, &w.LastName,
			&w.JobTitle, &w.WorkerType, &w.BaseSalary, &w.Active, &w.HiredAt, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		items = append(items, &w)
	}
	return items, rows.Err()
}
