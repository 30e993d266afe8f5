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

var _ repository.InstallationRepository = (*InstallationRepo)(nil)

// InstallationRepo implementación del puerto InstallationRepository sobre PostgreSQL
// (tabla `instalaciones`).
type InstallationRepo struct {
	q Querier
}

// NewInstallationRepository construye el adaptador de persistencia para instalaciones.
func NewInstallationRepository(q Querier) *InstallationRepo {
	return &InstallationRepo{q: q}
}

// Create persiste una nueva instalación. El código es único por empresa.
func (r *InstallationRepo) Create(installation *entity.Installation) error {
	query := `
		INSERT INTO instalaciones (id, company_id, code, customer_id, address, stratum, meter_serial, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		installation.ID, installation.CompanyID, installation.Code, installation.CustomerID,
		installation.Address, installation.Stratum, installation.MeterSerial, installation.Status,
		installation.CreatedAt, installation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert instalacion: %w", err)
	}
	return nil
}

// GetByID obtiene una instalación por ID.
func (r *InstallationRepo) GetByID(id string) (*entity.Installation, error) {
	query := `
		SELECT id, company_id, code, customer_id, address, stratum, meter_serial, status, created_at, updated_at
		FROM instalaciones WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCompanyAndCode obtiene una instalación por empresa y código de contrato.
func (r *InstallationRepo) GetByCompanyAndCode(companyID, code string) (*entity.Installation, error) {
	query := `
		SELECT id, company_id, code, customer_id, address, stratum, meter_serial, status, created_at, updated_at
		FROM instalaciones WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code))
}

// ListByCompany lista instalaciones por empresa con paginación.
func (r *InstallationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Installation, error) {
	query := `
		SELECT id, company_id, code, customer_id, address, stratum, meter_serial, status, created_at, updated_at
		FROM instalaciones WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list instalaciones: %w", err)
	}
	defer rows.Close()

	var items []*entity.Installation
	for rows.Next() {
		var i entity.Installation
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.Code, &i.CustomerID, &i.Address, &i.Stratum, &i.MeterSerial, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan instalacion: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// Update actualiza una instalación existente. El código no se modifica.
func (r *InstallationRepo) Update(installation *entity.Installation) error {
	query := `
		UPDATE instalaciones SET customer_id = $2, address = $3, stratum = $4, meter_serial = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		installation.ID, installation.CustomerID, installation.Address, installation.Stratum,
		installation.MeterSerial, installation.Status, installation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update instalacion: %w", err)
	}
	return nil
}

func (r *InstallationRepo) scanOne(row pgx.Row) (*entity.Installation, error) {
	var i entity.Installation
	err := row.Scan(&i.ID, &i.CompanyID, &i.Code, &i.CustomerID, &i.Address, &i.Stratum, &i.MeterSerial, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instalacion: %w", err)
	}
	return &i, nil
}
