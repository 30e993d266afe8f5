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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL
// (tabla `recaudos`).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de persistencia para recaudos.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un recaudo.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO recaudos (id, company_id, installation_code, diferido_id, amount, method, reference,
			received_at, received_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CompanyID, payment.InstallationCode, payment.DeferredPlanID,
		payment.Amount, payment.Method, payment.Reference, payment.ReceivedAt, payment.ReceivedBy, payment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert recaudo: %w", err)
	}
	return nil
}

// GetByID obtiene un recaudo por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, company_id, installation_code, diferido_id, amount, method, reference, received_at, received_by, created_at
		FROM recaudos WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.InstallationCode, &p.DeferredPlanID, &p.Amount,
		&p.Method, &p.Reference, &p.ReceivedAt, &p.ReceivedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recaudo: %w", err)
	}
	return &p, nil
}

// ListByInstallation lista recaudos de una instalación, más recientes primero.
func (r *PaymentRepo) ListByInstallation(companyID, installationCode string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, company_id, installation_code, diferido_id, amount, method, reference, received_at, received_by, created_at
		FROM recaudos WHERE company_id = $1 AND installation_code = $2
		ORDER BY received_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, installationCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recaudos: %w", err)
	}
	return r.collect(rows)
}

// ListByPlan lista los recaudos asociados a un diferido.
func (r *PaymentRepo) ListByPlan(companyID string, planID int64) ([]*entity.Payment, error) {
	query := `
		SELECT id, company_id, installation_code, diferido_id, amount, method, reference, received_at, received_by, created_at
		FROM recaudos WHERE company_id = $1 AND diferido_id = $2
		ORDER BY received_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, planID)
	if err != nil {
		return nil, fmt.Errorf("list recaudos by diferido: %w", err)
	}
	return r.collect(rows)
}

func (r *PaymentRepo) collect(rows pgx.Rows) ([]*entity.Payment, error) {
	defer rows.Close()
	var items []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.InstallationCode, &p.DeferredPlanID, &p.Amount,
			&p.Method, &p.Reference, &p.ReceivedAt, &p.ReceivedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recaudo: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}
