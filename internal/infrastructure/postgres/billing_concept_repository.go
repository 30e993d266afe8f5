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

var _ repository.BillingConceptRepository = (*BillingConceptRepo)(nil)

// BillingConceptRepo implementación del puerto BillingConceptRepository sobre
// PostgreSQL (tabla `conceptos`).
type BillingConceptRepo struct {
	q Querier
}

// NewBillingConceptRepository construye el adaptador de persistencia para conceptos.
func NewBillingConceptRepository(q Querier) *BillingConceptRepo {
	return &BillingConceptRepo{q: q}
}

// Create persiste un nuevo concepto. El código es único por empresa.
func (r *BillingConceptRepo) Create(concept *entity.BillingConcept) error {
	query := `
		INSERT INTO conceptos (id, company_id, code, name, deferred_eligible, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		concept.ID, concept.CompanyID, concept.Code, concept.Name,
		concept.DeferredEligible, concept.Active, concept.CreatedAt, concept.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert concepto: %w", err)
	}
	return nil
}

// GetByID obtiene un concepto por ID.
func (r *BillingConceptRepo) GetByID(id string) (*entity.BillingConcept, error) {
	query := `
		SELECT id, company_id, code, name, deferred_eligible, active, created_at, updated_at
		FROM conceptos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCompanyAndCode obtiene un concepto por empresa y código.
func (r *BillingConceptRepo) GetByCompanyAndCode(companyID, code string) (*entity.BillingConcept, error) {
	query := `
		SELECT id, company_id, code, name, deferred_eligible, active, created_at, updated_at
		FROM conceptos WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code))
}

// ListByCompany lista conceptos por empresa con paginación.
func (r *BillingConceptRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.BillingConcept, error) {
	query := `
		SELECT id, company_id, code, name, deferred_eligible, active, created_at, updated_at
		FROM conceptos WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list conceptos: %w", err)
	}
	defer rows.Close()

	var items []*entity.BillingConcept
	for rows.Next() {
		var c entity.BillingConcept
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Code, &c.Name, &c.DeferredEligible, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan concepto: %w", err)
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

// Update actualiza un concepto existente. El código no se modifica.
func (r *BillingConceptRepo) Update(concept *entity.BillingConcept) error {
	query := `
		UPDATE conceptos SET name = $2, deferred_eligible = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		concept.ID, concept.Name, concept.DeferredEligible, concept.Active, concept.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update concepto: %w", err)
	}
	return nil
}

func (r *BillingConceptRepo) scanOne(row pgx.Row) (*entity.BillingConcept, error) {
	var c entity.BillingConcept
	err := row.Scan(&c.ID, &c.CompanyID, &c.Code, &c.Name, &c.DeferredEligible, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get concepto: %w", err)
	}
	return &c, nil
}
