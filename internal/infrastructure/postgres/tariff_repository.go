package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acuasoft/acueducto-api/internal/domain/entity"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

var _ repository.TariffRepository = (*TariffRepo)(nil)

// TariffRepo implementación del puerto TariffRepository sobre PostgreSQL
// (tabla `tarifas`).
type TariffRepo struct {
	q Querier
}

// NewTariffRepository construye el adaptador de persistencia para tarifas.
func NewTariffRepository(q Querier) *TariffRepo {
	return &TariffRepo{q: q}
}

// Create persiste una nueva tarifa y desactiva la vigente del mismo estrato.
func (r *TariffRepo) Create(tariff *entity.Tariff) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`UPDATE tarifas SET active = false, updated_at = $3 WHERE company_id = $1 AND stratum = $2 AND active`,
		tariff.CompanyID, tariff.Stratum, tariff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("deactivate tarifas: %w", err)
	}
	query := `
		INSERT INTO tarifas (id, company_id, stratum, fixed_charge, basic_limit, basic_price,
			complementary_limit, complementary_price, sumptuary_price, valid_from, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		tariff.ID, tariff.CompanyID, tariff.Stratum, tariff.FixedCharge, tariff.BasicLimit, tariff.BasicPrice,
		tariff.ComplementaryLimit, tariff.ComplementaryPrice, tariff.SumptuaryPrice,
		tariff.ValidFrom, tariff.Active, tariff.CreatedAt, tariff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tarifa: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID.
func (r *TariffRepo) GetByID(id string) (*entity.Tariff, error) {
	query := `
		SELECT id, company_id, stratum, fixed_charge, basic_limit, basic_price,
			complementary_limit, complementary_price, sumptuary_price, valid_from, active, created_at, updated_at
		FROM tarifas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveByStratum retorna la tarifa activa de la empresa para el estrato, o nil.
func (r *TariffRepo) GetActiveByStratum(companyID string, stratum int) (*entity.Tariff, error) {
	query := `
		SELECT id, company_id, stratum, fixed_charge, basic_limit, basic_price,
			complementary_limit, complementary_price, sumptuary_price, valid_from, active, created_at, updated_at
		FROM tarifas WHERE company_id = $1 AND stratum = $2 AND active`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, stratum))
}

// ListByCompany lista las tarifas de la empresa, activas primero.
func (r *TariffRepo) ListByCompany(companyID string) ([]*entity.Tariff, error) {
	query := `
		SELECT id, company_id, stratum, fixed_charge, basic_limit, basic_price,
			complementary_limit, complementary_price, sumptuary_price, valid_from, active, created_at, updated_at
		FROM tarifas WHERE company_id = $1 ORDER BY active DESC, stratum, valid_from DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tarifas: %w", err)
	}
	defer rows.Close()

	var items []*entity.Tariff
	for rows.Next() {
		var t entity.Tariff
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Stratum, &t.FixedCharge, &t.BasicLimit, &t.BasicPrice,
			&t.ComplementaryLimit, &t.ComplementaryPrice, &t.SumptuaryPrice, &t.ValidFrom, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tarifa: %w", err)
		}
		items = append(items, &t)
	}
	return items, rows.Err()
}

func (r *TariffRepo) scanOne(row pgx.Row) (*entity.Tariff, error) {
	var t entity.Tariff
	err := row.Scan(&t.ID, &t.CompanyID, &t.Stratum, &t.FixedCharge, &t.BasicLimit, &t.BasicPrice,
		&t.ComplementaryLimit, &t.ComplementaryPrice, &t.SumptuaryPrice, &t.ValidFrom, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarifa: %w", err)
	}
	return &t, nil
}
