package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
)

var (
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
	_ repository.ContactRepository      = (*ContactRepo)(nil)
	_ repository.ThemeRepository        = (*ThemeRepo)(nil)
	_ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)
	_ repository.EmployeeRepository     = (*EmployeeRepo)(nil)
)

// NotificationRepo bandeja de notificaciones sobre PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// ListForUser últimas notificaciones del usuario en la empresa, con el nombre
// del remitente resuelto (LEFT JOIN: el remitente pudo ser deshabilitado).
func (r *NotificationRepo) ListForUser(ctx context.Context, userID, companyID int64, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT n.id, n.subject, n.message, n.is_read, n.created_at, COALESCE(u.name, '')
		FROM notifications n
		LEFT JOIN users u ON n.from_user_id = u.id
		WHERE n.to_user_id = $1 AND n.company_id = $2
		ORDER BY n.id DESC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, userID, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		n := entity.Notification{ToUserID: userID, CompanyID: companyID}
		if err := rows.Scan(&n.ID, &n.Subject, &n.Message, &n.IsRead, &n.CreatedAt, &n.FromUser); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca como leída solo si la notificación es del usuario.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	query := `
		UPDATE notifications SET is_read = true, read_at = now()
		WHERE id = $1 AND to_user_id = $2`
	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ContactRepo directorio de contactos sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador del directorio.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// ListByCompany contactos de la empresa, orden ascendente por nombre.
func (r *ContactRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Contact, error) {
	query := `
		SELECT id, name, mobile, email, address, remark
		FROM contacts
		WHERE company_id = $1
		ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contact
	for rows.Next() {
		c := entity.Contact{CompanyID: companyID}
		if err := rows.Scan(&c.ID, &c.Name, &c.Mobile, &c.Email, &c.Address, &c.Remark); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ThemeRepo preferencias de tema sobre PostgreSQL.
type ThemeRepo struct {
	pool *pgxpool.Pool
}

// NewThemeRepository construye el adaptador de temas.
func NewThemeRepository(pool *pgxpool.Pool) *ThemeRepo {
	return &ThemeRepo{pool: pool}
}

const themeColumns = `id, name, is_default, navbar_bg, sidebar_bg, module_bg, footer_bg,
		menu_submenu_bg, current_module_bg, mtrs_color, navbar_font_color, menu_header_bg`

// ForUser tema elegido por el usuario, con fallback al tema default.
func (r *ThemeRepo) ForUser(ctx context.Context, userID int64) (*entity.Theme, error) {
	query := `
		SELECT ` + themeColumns + `
		FROM themes
		WHERE id = COALESCE(
			(SELECT theme_id FROM user_themes WHERE user_id = $1),
			(SELECT id FROM themes WHERE is_default = true LIMIT 1)
		)`
	var t entity.Theme
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&t.ID, &t.Name, &t.IsDefault, &t.NavbarBg, &t.SidebarBg, &t.ModuleBg, &t.FooterBg,
		&t.MenuSubmenuBg, &t.CurrentModuleBg, &t.MtrsColor, &t.NavbarFontColor, &t.MenuHeaderBg,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get theme for user: %w", err)
	}
	return &t, nil
}

// List temas disponibles, orden por nombre.
func (r *ThemeRepo) List(ctx context.Context) ([]*entity.Theme, error) {
	query := `SELECT id, name, navbar_bg FROM themes ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Theme
	for rows.Next() {
		var t entity.Theme
		if err := rows.Scan(&t.ID, &t.Name, &t.NavbarBg); err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SaveUserTheme upsert de la preferencia de tema del usuario.
func (r *ThemeRepo) SaveUserTheme(ctx context.Context, userID, themeID int64) error {
	query := `
		INSERT INTO user_themes (user_id, theme_id, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET theme_id = EXCLUDED.theme_id, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, userID, themeID); err != nil {
		return fmt.Errorf("save user theme: %w", err)
	}
	return nil
}

// SubscriptionRepo períodos de suscripción sobre PostgreSQL.
type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository construye el adaptador de suscripción.
func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// LatestPeriodEnd fecha de fin del último período cargado.
func (r *SubscriptionRepo) LatestPeriodEnd(ctx context.Context) (time.Time, bool, error) {
	query := `SELECT ends_at FROM subscription_periods ORDER BY id DESC LIMIT 1`
	var endsAt time.Time
	err := r.pool.QueryRow(ctx, query).Scan(&endsAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("latest period: %w", err)
	}
	return endsAt, true, nil
}

// EmployeeRepo consulta de empleados sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// ListActive empleados activos, orden por nombre de pila.
func (r *EmployeeRepo) ListActive(ctx context.Context) ([]*entity.Employee, error) {
	query := `
		SELECT id, prefix, first_name, middle_name, last_name
		FROM employees
		WHERE status = $1
		ORDER BY first_name ASC`
	rows, err := r.pool.Query(ctx, query, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e := entity.Employee{Status: entity.StatusActive}
		if err := rows.Scan(&e.ID, &e.Prefix, &e.FirstName, &e.MiddleName, &e.LastName); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
