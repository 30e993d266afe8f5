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

var _ repository.MeterReadingRepository = (*MeterReadingRepo)(nil)

// MeterReadingRepo implementación del puerto MeterReadingRepository sobre
// PostgreSQL (tabla `lecturas`).
type MeterReadingRepo struct {
	q Querier
}

// NewMeterReadingRepository construye el adaptador de persistencia para lecturas.
func NewMeterReadingRepository(q Querier) *MeterReadingRepo {
	return &MeterReadingRepo{q: q}
}

// Create persiste una lectura. Una por instalación y período (constraint único).
func (r *MeterReadingRepo) Create(reading *entity.MeterReading) error {
	query := `
		INSERT INTO lecturas (id, company_id, installation_code, period, previous_reading, current_reading,
			consumption, charge, read_at, read_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		reading.ID, reading.CompanyID, reading.InstallationCode, reading.Period,
		reading.PreviousReading, reading.CurrentReading, reading.Consumption, reading.Charge,
		reading.ReadAt, reading.ReadBy, reading.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lectura: %w", err)
	}
	return nil
}

// GetByID obtiene una lectura por ID.
func (r *MeterReadingRepo) GetByID(id string) (*entity.MeterReading, error) {
	query := selectReading + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetLatest retorna la última lectura registrada de la instalación, o nil.
func (r *MeterReadingRepo) GetLatest(companyID, installationCode string) (*entity.MeterReading, error) {
	query := selectReading + `
		WHERE company_id = $1 AND installation_code = $2
		ORDER BY period DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, installationCode))
}

// GetByPeriod retorna la lectura de la instalación en el período, o nil.
func (r *MeterReadingRepo) GetByPeriod(companyID, installationCode, period string) (*entity.MeterReading, error) {
	query := selectReading + ` WHERE company_id = $1 AND installation_code = $2 AND period = $3`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, installationCode, period))
}

// ListByInstallation lista lecturas de una instalación, período más reciente primero.
func (r *MeterReadingRepo) ListByInstallation(companyID, installationCode string, limit, offset int) ([]*entity.MeterReading, error) {
	query := selectReading + `
		WHERE company_id = $1 AND installation_code = $2
		ORDER BY period DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, installationCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lecturas: %w", err)
	}
	defer rows.Close()

	var items []*entity.MeterReading
	for rows.Next() {
		var m entity.MeterReading
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.InstallationCode, &m.Period, &m.PreviousReading,
			&m.CurrentReading, &m.Consumption, &m.Charge, &m.ReadAt, &m.ReadBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lectura: %w", err)
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

const selectReading = `
	SELECT id, company_id, installation_code, period, previous_reading, current_reading,
		consumption, charge, read_at, read_by, created_at
	FROM lecturas`

func (r *MeterReadingRepo) scanOne(row pgx.Row) (*entity.MeterReading, error) {
	var m entity.MeterReading
	err := row.Scan(&m.ID, &m.CompanyID, &m.InstallationCode, &m.Period, &m.PreviousReading,
		&m.CurrentReading, &m.Consumption, &m.Charge, &m.ReadAt, &m.ReadBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lectura: %w", err)
	}
	return &m, nil
}
