package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
	"github.com/jhoicas/Portal-api/internal/domain/session"
	"github.com/jhoicas/Portal-api/pkg/config"
)

// NavigationUseCase evalúa permisos y deriva el árbol de navegación visible
// para una sesión. Es una función pura por request sobre consultas de solo
// lectura: todo el estado vive en el almacén de permisos.
//
// Cada rol tiene su propia regla:
//   - Superuser: todos los módulos activos, sin scoping alguno.
//   - Admin: módulos con permisos rol-Admin; el scoping por empresa depende
//     de la configuración (ver config.AuthConfig.AdminRightsScope).
//   - User: solo lo alcanzable desde permisos individuales a nivel submenu.
type NavigationUseCase struct {
	navRepo repository.NavigationRepository
	// adminPerCompany true cuando los permisos de Admin se evalúan contra la
	// empresa activa; false reproduce el comportamiento legado (grant global).
	adminPerCompany bool
}

// NewNavigationUseCase construye el evaluador de navegación.
func NewNavigationUseCase(navRepo repository.NavigationRepository, authCfg config.AuthConfig) *NavigationUseCase {
	return &NavigationUseCase{
		navRepo:         navRepo,
		adminPerCompany: authCfg.AdminRightsScope != config.AdminScopeGlobal,
	}
}

// ListModules módulos visibles para la sesión, orden ascendente por nombre.
//
// Un rol desconocido devuelve lista vacía, no error: a nivel módulo la
// política es degradar en silencio a "nada visible". El fallo ruidoso queda
// para el nivel menú (ver ListMenus).
func (uc *NavigationUseCase) ListModules(ctx context.Context, sess session.Context) ([]dto.ModuleResponse, error) {
	var (
		modules []*entity.Module
		err     error
	)
	switch sess.Role {
	case entity.RoleSuperuser:
		modules, err = uc.navRepo.ListModulesAll(ctx)
	case entity.RoleAdmin:
		modules, err = uc.navRepo.ListModulesForAdmin(ctx, sess.UserID, sess.CompanyID, uc.adminPerCompany)
	case entity.RoleUser:
		modules, err = uc.navRepo.ListModulesForUser(ctx, sess.UserID, sess.CompanyID)
	default:
		return []dto.ModuleResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ModuleResponse{ID: m.ID, Name: m.Name, IconPath: m.IconPath})
	}
	return out, nil
}

// ListMenus menús y submenús visibles del módulo para la sesión.
//
// El rol Admin debe pasar primero una verificación de existencia de permisos
// sobre el módulo: si no tiene ninguno el resultado es ErrAccessDenied, no
// lista vacía. Un rol desconocido también es ErrAccessDenied. Esta asimetría
// con ListModules es intencional y los clientes dependen de ella.
func (uc *NavigationUseCase) ListMenus(ctx context.Context, sess session.Context, moduleID int64) ([]dto.MenuResponse, error) {
	var (
		rows []repository.MenuRow
		err  error
	)
	switch sess.Role {
	case entity.RoleSuperuser:
		rows, err = uc.navRepo.ListMenusAll(ctx, moduleID)
	case entity.RoleAdmin:
		allowed, aerr := uc.navRepo.AdminHasModuleRights(ctx, sess.UserID, sess.CompanyID, moduleID, uc.adminPerCompany)
		if aerr != nil {
			return nil, aerr
		}
		if !allowed {
			return nil, domain.ErrAccessDenied
		}
		rows, err = uc.navRepo.ListMenusAll(ctx, moduleID)
	case entity.RoleUser:
		rows, err = uc.navRepo.ListMenusForUser(ctx, moduleID, sess.UserID, sess.CompanyID)
	default:
		return nil, domain.ErrAccessDenied
	}
	if err != nil {
		return nil, err
	}
	return groupMenus(rows), nil
}

// groupMenus agrupa filas menú+submenu en menús con sus submenús y aplica el
// orden de despliegue: grupos de tipo en secuencia fija (Dashboard, Master,
// Transaction, Reports, Setting), nombre dentro del grupo, submenús por id.
func groupMenus(rows []repository.MenuRow) []dto.MenuResponse {
	byID := make(map[int64]*dto.MenuResponse)
	order := make([]int64, 0, len(rows))
	for _, row := range rows {
		menu, ok := byID[row.MenuID]
		if !ok {
			menu = &dto.MenuResponse{
				ID:       row.MenuID,
				Name:     row.MenuName,
				Type:     row.MenuType,
				Submenus: []dto.SubmenuResponse{},
			}
			byID[row.MenuID] = menu
			order = append(order, row.MenuID)
		}
		// Submenu en NULL: menú sin hijos activos (solo posible vía LEFT JOIN).
		if row.SubmenuID == nil {
			continue
		}
		sub := dto.SubmenuResponse{ID: *row.SubmenuID}
		if row.SubmenuName != nil {
			sub.Name = *row.SubmenuName
		}
		if row.RedirectPage != nil {
			sub.RedirectPage = *row.RedirectPage
		}
		menu.Submenus = append(menu.Submenus, sub)
	}

	out := make([]dto.MenuResponse, 0, len(order))
	for _, id := range order {
		menu := byID[id]
		sort.Slice(menu.Submenus, func(i, j int) bool {
			return menu.Submenus[i].ID < menu.Submenus[j].ID
		})
		out = append(out, *menu)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := entity.MenuTypeRank(out[i].Type), entity.MenuTypeRank(out[j].Type)
		if ri != rj {
			return ri < rj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
