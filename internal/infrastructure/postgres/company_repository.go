package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ListAll todas las empresas, orden ascendente por nombre.
func (r *CompanyRepo) ListAll(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM companies ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

// ListForUser empresas con membresía activa del usuario, orden por nombre.
func (r *CompanyRepo) ListForUser(ctx context.Context, userID int64) ([]*entity.Company, error) {
	query := `
		SELECT c.id, c.name
		FROM user_companies uc
		JOIN companies c ON uc.company_id = c.id
		WHERE uc.user_id = $1 AND uc.status <> $2
		ORDER BY c.name ASC`
	rows, err := r.pool.Query(ctx, query, userID, entity.StatusDisabled)
	if err != nil {
		return nil, fmt.Errorf("list companies for user: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

// DefaultCompanyID empresa de la membresía default+activa del usuario.
func (r *CompanyRepo) DefaultCompanyID(ctx context.Context, userID int64) (int64, bool, error) {
	query := `
		SELECT company_id FROM user_companies
		WHERE user_id = $1 AND is_default = true AND status <> $2
		LIMIT 1`
	var companyID int64
	err := r.pool.QueryRow(ctx, query, userID, entity.StatusDisabled).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("default company: %w", err)
	}
	return companyID, true, nil
}

// HasActiveMembership valida la pertenencia usuario↔empresa.
func (r *CompanyRepo) HasActiveMembership(ctx context.Context, userID, companyID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_companies
			WHERE user_id = $1 AND company_id = $2 AND status <> $3
		)`
	var member bool
	if err := r.pool.QueryRow(ctx, query, userID, companyID, entity.StatusDisabled).Scan(&member); err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return member, nil
}

func scanCompanies(rows pgx.Rows) ([]*entity.Company, error) {
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
