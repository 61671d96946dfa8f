package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, name, login, password_hash, role, status, category, mobile, email, employee_id, created_by, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(
		&u.ID, &u.Name, &u.Login, &u.PasswordHash, &role, &u.Status, &u.Category,
		&u.Mobile, &u.Email, &u.EmployeeID, &u.CreatedBy, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = entity.ParseRole(role)
	return &u, nil
}

// FindActiveByLogin busca por login excluyendo cuentas deshabilitadas.
func (r *UserRepo) FindActiveByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE login = $1 AND status <> $2`
	u, err := scanUser(r.pool.QueryRow(ctx, query, login, entity.StatusDisabled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// Create persiste un nuevo usuario y devuelve su ID generado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (name, login, password_hash, role, status, category, mobile, email, employee_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Login, user.PasswordHash, user.Role.String(), user.Status, user.Category,
		user.Mobile, user.Email, user.EmployeeID, user.CreatedBy, user.CreatedAt, user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// LoginExists chequeo de unicidad de login.
func (r *UserRepo) LoginExists(ctx context.Context, login string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE login = $1)`, login)
}

// MobileExists chequeo de unicidad de móvil.
func (r *UserRepo) MobileExists(ctx context.Context, mobile string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE mobile = $1)`, mobile)
}

// EmailExists chequeo de unicidad de email.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

// EmployeeHasUser informa si el empleado ya tiene una cuenta vinculada.
func (r *UserRepo) EmployeeHasUser(ctx context.Context, employeeID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE employee_id = $1 AND employee_id <> 0)`, employeeID)
}

func (r *UserRepo) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return found, nil
}

// uniqueViolation SQLSTATE de violación de constraint único. Las carreras
// entre los chequeos de unicidad del alta y el INSERT terminan aquí.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
