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

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación del puerto PayrollRepository sobre PostgreSQL
// (tablas `nomina_periodos` y `nomina_detalles`).
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador de persistencia para nómina.
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

// CreatePeriod persiste un período liquidado. Período único por empresa.
func (r *PayrollRepo) CreatePeriod(period *entity.PayrollPeriod) error {
	query := `
		INSERT INTO nomina_periodos (id, company_id, period, total_earned, total_deducted, total_net,
			dian_status, dian_track_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		period.ID, period.CompanyID, period.Period, period.TotalEarned, period.TotalDeducted, period.TotalNet,
		period.DIANStatus, period.DIANTrackID, period.CreatedBy, period.CreatedAt, period.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert periodo nomina: %w", err)
	}
	return nil
}

// CreateEntry persiste la liquidación de un trabajador dentro del período.
func (r *PayrollRepo) CreateEntry(entry *entity.PayrollEntry) error {
	query := `
		INSERT INTO nomina_detalles (id, periodo_id, worker_id, days_worked, earned,
			health_deduction, pension_deduction, net, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.PayrollPeriodID, entry.WorkerID, entry.DaysWorked, entry.Earned,
		entry.HealthDeduction, entry.PensionDeduction, entry.Net, entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert detalle nomina: %w", err)
	}
	return nil
}

// GetPeriodByID obtiene un período por id dentro de la empresa, o nil.
func (r *PayrollRepo) GetPeriodByID(id, companyID string) (*entity.PayrollPeriod, error) {
	query := selectPayrollPeriod + ` WHERE id = $1 AND company_id = $2`
	return r.scanPeriod(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetPeriodByCompanyAndPeriod obtiene el período YYYY-MM de la empresa, o nil.
func (r *PayrollRepo) GetPeriodByCompanyAndPeriod(companyID, period string) (*entity.PayrollPeriod, error) {
	query := selectPayrollPeriod + ` WHERE company_id = $1 AND period = $2`
	return r.scanPeriod(r.q.QueryRow(context.Background(), query, companyID, period))
}

// ListPeriodsByCompany lista períodos de la empresa, más recientes primero.
func (r *PayrollRepo) ListPeriodsByCompany(companyID string, limit, offset int) ([]*entity.PayrollPeriod, error) {
	query := selectPayrollPeriod + ` WHERE company_id = $1 ORDER BY period DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list periodos nomina: %w", err)
	}
	defer rows.Close()

	var items []*entity.PayrollPeriod
	for rows.Next() {
		var p entity.PayrollPeriod
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Period, &p.TotalEarned, &p.TotalDeducted, &p.TotalNet,
			&p.DIANStatus, &p.DIANTrackID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan periodo nomina: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

// ListEntriesByPeriod lista las liquidaciones individuales del período.
func (r *PayrollRepo) ListEntriesByPeriod(periodID string) ([]*entity.PayrollEntry, error) {
	query := `
		SELECT id, periodo_id, worker_id, days_worked, earned, health_deduction, pension_deduction, net, created_at
		FROM nomina_detalles WHERE periodo_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, periodID)
	if err != nil {
		return nil, fmt.Errorf("list detalles nomina: %w", err)
	}
	defer rows.Close()

	var items []*entity.PayrollEntry
	for rows.Next() {
		var e entity.PayrollEntry
		if err := rows.Scan(&e.ID, &e.PayrollPeriodID, &e.WorkerID, &e.DaysWorked, &e.Earned,
			&e.HealthDeduction, &e.PensionDeduction, &e.Net, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan detalle nomina: %w", err)
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

// UpdatePeriod actualiza el estado DIAN de un período.
func (r *PayrollRepo) UpdatePeriod(period *entity.PayrollPeriod) error {
	query := `
		UPDATE nomina_periodos SET dian_status = $2, dian_track_id = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		period.ID, period.DIANStatus, period.DIANTrackID, period.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update periodo nomina: %w", err)
	}
	return nil
}

const selectPayrollPeriod = `
	SELECT id, company_id, period, total_earned, total_deducted, total_net,
		dian_status, dian_track_id, created_by, created_at, updated_at
	FROM nomina_periodos`

func (r *PayrollRepo) scanPeriod(row pgx.Row) (*entity.PayrollPeriod, error) {
	var p entity.PayrollPeriod
	err := row.Scan(&p.ID, &p.CompanyID, &p.Period, &p.TotalEarned, &p.TotalDeducted, &p.TotalNet,
		&p.DIANStatus, &p.DIANTrackID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get periodo nomina: %w", err)
	}
	return &p, nil
}
