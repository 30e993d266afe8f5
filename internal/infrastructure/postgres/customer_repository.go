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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL
// (tabla `suscriptores`).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para suscriptores.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo suscriptor.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO suscriptores (id, company_id, name, document_id, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyID, customer.Name, customer.DocumentID,
		customer.Email, customer.Phone, customer.Address, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert suscriptor: %w", err)
	}
	return nil
}

// GetByID obtiene un suscriptor por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, document_id, email, phone, address, created_at, updated_at
		FROM suscriptores WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.DocumentID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suscriptor: %w", err)
	}
	return &c, nil
}

// GetByCompanyAndDocument obtiene un suscriptor por empresa y documento (cédula/NIT).
func (r *CustomerRepo) GetByCompanyAndDocument(companyID, documentID string) (*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, document_id, email, phone, address, created_at, updated_at
		FROM suscriptores WHERE company_id = $1 AND document_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, companyID, documentID).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.DocumentID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suscriptor by documento: %w", err)
	}
	return &c, nil
}

// ListByCompany lista suscriptores por empresa con paginación.
func (r *CustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, document_id, email, phone, address, created_at, updated_at
		FROM suscriptores WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suscriptores: %w", err)
	}
	defer rows.Close()

	var items []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.DocumentID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan suscriptor: %w", err)
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

// Update actualiza un suscriptor existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE suscriptores SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update suscriptor: %w", err)
	}
	return nil
}

// Delete elimina un suscriptor (sin instalaciones asociadas; la FK lo protege).
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suscriptores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete suscriptor: %w", err)
	}
	return nil
}
