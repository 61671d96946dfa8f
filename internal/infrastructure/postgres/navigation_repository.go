package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
)

var _ repository.NavigationRepository = (*NavigationRepo)(nil)

// NavigationRepo consultas de módulos, menús y permisos sobre PostgreSQL.
// Todas las consultas filtran por estado activo en cada nivel de la jerarquía.
type NavigationRepo struct {
	pool *pgxpool.Pool
}

// NewNavigationRepository construye el adaptador de navegación.
func NewNavigationRepository(pool *pgxpool.Pool) *NavigationRepo {
	return &NavigationRepo{pool: pool}
}

// ListModulesAll todos los módulos activos (superusuario).
func (r *NavigationRepo) ListModulesAll(ctx context.Context) ([]*entity.Module, error) {
	query := `
		SELECT id, name, icon_path FROM modules
		WHERE status = $1
		ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()
	return scanModules(rows)
}

// ListModulesForAdmin módulos con permisos rol-Admin del usuario. Con
// perCompany el permiso debe además coincidir con la empresa activa; sin él
// se reproduce el comportamiento legado de grant global.
func (r *NavigationRepo) ListModulesForAdmin(ctx context.Context, userID, companyID int64, perCompany bool) ([]*entity.Module, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.icon_path
		FROM user_rights ur
		JOIN modules m ON ur.module_id = m.id
		WHERE ur.user_id = $1
		  AND ur.role = $2
		  AND m.status = $3
		  AND ($4 = false OR ur.company_id = $5)
		ORDER BY m.name ASC`
	rows, err := r.pool.Query(ctx, query,
		userID, entity.RoleAdmin.String(), entity.StatusActive, perCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("list modules for admin: %w", err)
	}
	defer rows.Close()
	return scanModules(rows)
}

// ListModulesForUser módulos alcanzables transitivamente: permiso a nivel
// submenu → menú padre → módulo, activos en los tres niveles.
func (r *NavigationRepo) ListModulesForUser(ctx context.Context, userID, companyID int64) ([]*entity.Module, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.icon_path
		FROM user_rights ur
		JOIN submenus s  ON ur.submenu_id = s.id
		JOIN menus mn    ON s.menu_id = mn.id
		JOIN modules m   ON mn.module_id = m.id
		WHERE ur.user_id = $1
		  AND ur.company_id = $2
		  AND ur.role = $3
		  AND m.status = $4
		  AND mn.status = $4
		  AND s.status = $4
		ORDER BY m.name ASC`
	rows, err := r.pool.Query(ctx, query,
		userID, companyID, entity.RoleUser.String(), entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list modules for user: %w", err)
	}
	defer rows.Close()
	return scanModules(rows)
}

// AdminHasModuleRights existencia de permisos rol-Admin sobre el módulo.
func (r *NavigationRepo) AdminHasModuleRights(ctx context.Context, userID, companyID, moduleID int64, perCompany bool) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_rights
			WHERE user_id = $1
			  AND module_id = $2
			  AND role = $3
			  AND ($4 = false OR company_id = $5)
		)`
	var allowed bool
	err := r.pool.QueryRow(ctx, query,
		userID, moduleID, entity.RoleAdmin.String(), perCompany, companyID).Scan(&allowed)
	if err != nil {
		return false, fmt.Errorf("check admin rights: %w", err)
	}
	return allowed, nil
}

// ListMenusAll menús activos del módulo con sus submenús activos. El LEFT
// JOIN conserva menús sin submenús: siguen siendo navegables como hoja.
func (r *NavigationRepo) ListMenusAll(ctx context.Context, moduleID int64) ([]repository.MenuRow, error) {
	query := `
		SELECT mn.id, mn.name, mn.type, s.id, s.name, s.redirect_page
		FROM menus mn
		LEFT JOIN submenus s ON mn.id = s.menu_id AND s.status = $2
		WHERE mn.module_id = $1 AND mn.status = $2
		ORDER BY mn.id, s.id`
	rows, err := r.pool.Query(ctx, query, moduleID, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()
	return scanMenuRows(rows)
}

// ListMenusForUser solo menús/submenús con permiso directo del usuario en la
// empresa activa. JOIN estricto: un menú sin submenu permitido no aparece.
func (r *NavigationRepo) ListMenusForUser(ctx context.Context, moduleID, userID, companyID int64) ([]repository.MenuRow, error) {
	query := `
		SELECT mn.id, mn.name, mn.type, s.id, s.name, s.redirect_page
		FROM menus mn
		JOIN submenus s    ON mn.id = s.menu_id
		JOIN user_rights ur ON s.id = ur.submenu_id
		WHERE mn.module_id = $1
		  AND ur.user_id = $2
		  AND ur.company_id = $3
		  AND ur.role = $4
		  AND mn.status = $5
		  AND s.status = $5
		ORDER BY mn.id, s.id`
	rows, err := r.pool.Query(ctx, query,
		moduleID, userID, companyID, entity.RoleUser.String(), entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list menus for user: %w", err)
	}
	defer rows.Close()
	return scanMenuRows(rows)
}

func scanModules(rows pgx.Rows) ([]*entity.Module, error) {
	var list []*entity.Module
	for rows.Next() {
		m := entity.Module{Status: entity.StatusActive}
		if err := rows.Scan(&m.ID, &m.Name, &m.IconPath); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func scanMenuRows(rows pgx.Rows) ([]repository.MenuRow, error) {
	var list []repository.MenuRow
	for rows.Next() {
		var row repository.MenuRow
		if err := rows.Scan(&row.MenuID, &row.MenuName, &row.MenuType,
			&row.SubmenuID, &row.SubmenuName, &row.RedirectPage); err != nil {
			return nil, fmt.Errorf("scan menu row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
