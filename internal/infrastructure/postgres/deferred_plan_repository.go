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

var _ repository.DeferredPlanRepository = (*DeferredPlanRepo)(nil)

// DeferredPlanRepo implementación del puerto DeferredPlanRepository sobre PostgreSQL
// (tabla `diferidos`, usable con pool o tx).
type DeferredPlanRepo struct {
	q Querier
}

// NewDeferredPlanRepository construye el adaptador de persistencia para diferidos.
func NewDeferredPlanRepository(q Querier) *DeferredPlanRepo {
	return &DeferredPlanRepo{q: q}
}

// Create persiste un nuevo diferido y asigna el id de la secuencia en plan.ID.
func (r *DeferredPlanRepo) Create(plan *entity.DeferredPlan) error {
	query := `
		INSERT INTO diferidos (contrato_id, concepto_diferido_id, monto_original, numero_cuotas, cuotas_pendientes,
			fecha_inicio, valor_cuota, por_interes, saldo, estado, observaciones, empresa_id, usuario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		plan.InstallationCode, plan.ConceptCode, plan.OriginalAmount, plan.InstallmentCount, plan.InstallmentsRemaining,
		plan.StartDate, plan.InstallmentAmount, plan.InterestRatePercent, plan.Balance, plan.Status,
		plan.Notes, plan.CompanyID, plan.CreatedBy, plan.CreatedAt, plan.UpdatedAt,
	).Scan(&plan.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert diferido: %w", err)
	}
	return nil
}

// GetByID obtiene un diferido por id dentro de la empresa. Retorna nil si no
// existe o pertenece a otra empresa.
func (r *DeferredPlanRepo) GetByID(id int64, companyID string) (*entity.DeferredPlan, error) {
	query := `
		SELECT id, contrato_id, concepto_diferido_id, monto_original, numero_cuotas, cuotas_pendientes,
			fecha_inicio, valor_cuota, por_interes, saldo, estado, observaciones, empresa_id, usuario, created_at, updated_at
		FROM diferidos WHERE id = $1 AND empresa_id = $2`
	var p entity.DeferredPlan
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(
		&p.ID, &p.InstallationCode, &p.ConceptCode, &p.OriginalAmount, &p.InstallmentCount, &p.InstallmentsRemaining,
		&p.StartDate, &p.InstallmentAmount, &p.InterestRatePercent, &p.Balance, &p.Status,
		&p.Notes, &p.CompanyID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get diferido: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los diferidos de la empresa, más recientes primero, con
// dirección de instalación y nombre de concepto resueltos. Los filtros vacíos
// no restringen.
func (r *DeferredPlanRepo) ListByCompany(companyID string, filter repository.DeferredPlanFilter) ([]*entity.DeferredPlanView, error) {
	query := `
		SELECT d.id, d.contrato_id, d.concepto_diferido_id, d.monto_original, d.numero_cuotas, d.cuotas_pendientes,
			d.fecha_inicio, d.valor_cuota, d.por_interes, d.saldo, d.estado, d.observaciones, d.empresa_id, d.usuario,
			d.created_at, d.updated_at,
			COALESCE(i.address, ''), COALESCE(c.name, '')
		FROM diferidos d
		LEFT JOIN instalaciones i ON i.company_id = d.empresa_id AND i.code = d.contrato_id
		LEFT JOIN conceptos c ON c.company_id = d.empresa_id AND c.code = d.concepto_diferido_id
		WHERE d.empresa_id = $1
			AND ($2 = '' OR d.contrato_id = $2)
			AND ($3 = '' OR d.estado = $3)
		ORDER BY d.id DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, filter.InstallationCode, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list diferidos: %w", err)
	}
	defer rows.Close()

	var items []*entity.DeferredPlanView
	for rows.Next() {
		var v entity.DeferredPlanView
		if err := rows.Scan(
			&v.ID, &v.InstallationCode, &v.ConceptCode, &v.OriginalAmount, &v.InstallmentCount, &v.InstallmentsRemaining,
			&v.StartDate, &v.InstallmentAmount, &v.InterestRatePercent, &v.Balance, &v.Status,
			&v.Notes, &v.CompanyID, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
			&v.InstallationAddress, &v.ConceptName,
		); err != nil {
			return nil, fmt.Errorf("scan diferido: %w", err)
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

// Update actualiza los campos modificables de un diferido. Empresa, contrato y
// concepto no se tocan.
func (r *DeferredPlanRepo) Update(plan *entity.DeferredPlan) error {
	query := `
		UPDATE diferidos SET monto_original = $3, numero_cuotas = $4, cuotas_pendientes = $5, fecha_inicio = $6,
			valor_cuota = $7, por_interes = $8, saldo = $9, estado = $10, observaciones = $11, usuario = $12, updated_at = $13
		WHERE id = $1 AND empresa_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.CompanyID, plan.OriginalAmount, plan.InstallmentCount, plan.InstallmentsRemaining,
		plan.StartDate, plan.InstallmentAmount, plan.InterestRatePercent, plan.Balance, plan.Status,
		plan.Notes, plan.CreatedBy, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update diferido: %w", err)
	}
	return nil
}
