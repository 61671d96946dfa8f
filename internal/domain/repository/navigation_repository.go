package repository

import (
	"context"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
)

// MenuRow fila cruda menú+submenu tal como la devuelve la consulta. Para los
// roles S/A el LEFT JOIN puede dejar el submenu en NULL (menú hoja sin hijos
// activos); para el rol U el JOIN es estricto y los punteros nunca son nil.
type MenuRow struct {
	MenuID       int64
	MenuName     string
	MenuType     string
	SubmenuID    *int64
	SubmenuName  *string
	RedirectPage *string
}

// NavigationRepository consultas de módulos, menús y permisos. Todas filtran
// por estado activo en cada nivel de la jerarquía.
type NavigationRepository interface {
	// ListModulesAll todos los módulos activos (superusuario, sin scoping).
	ListModulesAll(ctx context.Context) ([]*entity.Module, error)
	// ListModulesForAdmin módulos con algún permiso rol-Admin del usuario.
	// perCompany añade el predicado de empresa activa (ver AuthConfig).
	ListModulesForAdmin(ctx context.Context, userID, companyID int64, perCompany bool) ([]*entity.Module, error)
	// ListModulesForUser módulos alcanzables transitivamente desde permisos
	// a nivel submenu del usuario en la empresa activa.
	ListModulesForUser(ctx context.Context, userID, companyID int64) ([]*entity.Module, error)

	// AdminHasModuleRights existencia de permisos rol-Admin sobre el módulo.
	AdminHasModuleRights(ctx context.Context, userID, companyID, moduleID int64, perCompany bool) (bool, error)
	// ListMenusAll menús activos del módulo con sus submenús activos (LEFT JOIN).
	ListMenusAll(ctx context.Context, moduleID int64) ([]MenuRow, error)
	// ListMenusForUser solo menús/submenús con permiso directo del usuario.
	ListMenusForUser(ctx context.Context, moduleID, userID, companyID int64) ([]MenuRow, error)
}
