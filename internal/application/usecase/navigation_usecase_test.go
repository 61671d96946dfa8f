package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portal-api/internal/application/usecase"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
	"github.com/jhoicas/Portal-api/internal/domain/session"
	"github.com/jhoicas/Portal-api/pkg/config"
)

// fakeNavRepo espejo en memoria del almacén de permisos. Cada método registra
// los argumentos recibidos para poder verificar el scoping aplicado.
type fakeNavRepo struct {
	allModules   []*entity.Module
	adminModules []*entity.Module
	userModules  []*entity.Module
	adminRights  map[int64]bool // moduleID -> tiene permisos rol-Admin
	allMenus     map[int64][]repository.MenuRow
	userMenus    map[int64][]repository.MenuRow

	gotUserID     int64
	gotCompanyID  int64
	gotPerCompany bool
}

func (f *fakeNavRepo) ListModulesAll(_ context.Context) ([]*entity.Module, error) {
	return f.allModules, nil
}

func (f *fakeNavRepo) ListModulesForAdmin(_ context.Context, userID, companyID int64, perCompany bool) ([]*entity.Module, error) {
	f.gotUserID, f.gotCompanyID, f.gotPerCompany = userID, companyID, perCompany
	return f.adminModules, nil
}

func (f *fakeNavRepo) ListModulesForUser(_ context.Context, userID, companyID int64) ([]*entity.Module, error) {
	f.gotUserID, f.gotCompanyID = userID, companyID
	return f.userModules, nil
}

func (f *fakeNavRepo) AdminHasModuleRights(_ context.Context, userID, companyID, moduleID int64, perCompany bool) (bool, error) {
	f.gotUserID, f.gotCompanyID, f.gotPerCompany = userID, companyID, perCompany
	return f.adminRights[moduleID], nil
}

func (f *fakeNavRepo) ListMenusAll(_ context.Context, moduleID int64) ([]repository.MenuRow, error) {
	return f.allMenus[moduleID], nil
}

func (f *fakeNavRepo) ListMenusForUser(_ context.Context, moduleID, userID, companyID int64) ([]repository.MenuRow, error) {
	f.gotUserID, f.gotCompanyID = userID, companyID
	return f.userMenus[moduleID], nil
}

func menuRow(menuID int64, menuName, menuType string, submenuID int64, submenuName, redirect string) repository.MenuRow {
	return repository.MenuRow{
		MenuID:       menuID,
		MenuName:     menuName,
		MenuType:     menuType,
		SubmenuID:    &submenuID,
		SubmenuName:  &submenuName,
		RedirectPage: &redirect,
	}
}

func navUC(repo repository.NavigationRepository, scope string) *usecase.NavigationUseCase {
	return usecase.NewNavigationUseCase(repo, config.AuthConfig{
		SuperuserCompanyID: 1,
		AdminRightsScope:   scope,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// ListModules
// ──────────────────────────────────────────────────────────────────────────────

// El superusuario ve lo mismo sin importar la empresa activa.
func TestListModules_SuperusuarioIgnoraEmpresa(t *testing.T) {
	repo := &fakeNavRepo{allModules: []*entity.Module{{ID: 1, Name: "Compras"}, {ID: 2, Name: "Ventas"}}}
	uc := navUC(repo, config.AdminScopePerCompany)

	for _, companyID := range []int64{1, 7, 99} {
		sess := session.Context{UserID: 5, Role: entity.RoleSuperuser, CompanyID: companyID}
		out, err := uc.ListModules(context.Background(), sess)
		require.NoError(t, err)
		require.Len(t, out, 2, "empresa %d", companyID)
	}
}

func TestListModules_AdminScopeadoPorEmpresa(t *testing.T) {
	repo := &fakeNavRepo{adminModules: []*entity.Module{{ID: 3, Name: "Reportes"}}}
	uc := navUC(repo, config.AdminScopePerCompany)

	sess := session.Context{UserID: 8, Role: entity.RoleAdmin, CompanyID: 4}
	out, err := uc.ListModules(context.Background(), sess)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(8), repo.gotUserID)
	assert.Equal(t, int64(4), repo.gotCompanyID)
	assert.True(t, repo.gotPerCompany, "el scope per_company debe llegar a la consulta")
}

func TestListModules_AdminScopeGlobalLegado(t *testing.T) {
	repo := &fakeNavRepo{adminModules: []*entity.Module{{ID: 3, Name: "Reportes"}}}
	uc := navUC(repo, config.AdminScopeGlobal)

	sess := session.Context{UserID: 8, Role: entity.RoleAdmin, CompanyID: 4}
	_, err := uc.ListModules(context.Background(), sess)
	require.NoError(t, err)
	assert.False(t, repo.gotPerCompany, "con scope global no se filtra por empresa")
}

func TestListModules_RolDesconocido_ListaVaciaSinError(t *testing.T) {
	// Degradar en silencio a "nada visible": el fallo ruidoso es solo del nivel menú.
	uc := navUC(&fakeNavRepo{}, config.AdminScopePerCompany)

	sess := session.Context{UserID: 8, Role: entity.ParseRole("X"), CompanyID: 4}
	out, err := uc.ListModules(context.Background(), sess)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out, "debe ser lista vacía, no null")
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMenus
// ──────────────────────────────────────────────────────────────────────────────

func TestListMenus_AdminSinPermisosDelModulo_AccesoDenegado(t *testing.T) {
	// Sin registros de permisos para el módulo el resultado es denegación
	// explícita, no lista vacía.
	repo := &fakeNavRepo{
		adminRights: map[int64]bool{1: true},
		allMenus: map[int64][]repository.MenuRow{
			2: {menuRow(5, "Catálogos", entity.MenuTypeMaster, 42, "Items", "/items")},
		},
	}
	uc := navUC(repo, config.AdminScopePerCompany)

	sess := session.Context{UserID: 8, Role: entity.RoleAdmin, CompanyID: 4}
	_, err := uc.ListMenus(context.Background(), sess, 2)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestListMenus_AdminConPermisos_VeTodoElModulo(t *testing.T) {
	repo := &fakeNavRepo{
		adminRights: map[int64]bool{1: true},
		allMenus: map[int64][]repository.MenuRow{
			1: {
				menuRow(5, "Catálogos", entity.MenuTypeMaster, 42, "Items", "/items"),
				menuRow(5, "Catálogos", entity.MenuTypeMaster, 43, "Marcas", "/marcas"),
			},
		},
	}
	uc := navUC(repo, config.AdminScopePerCompany)

	sess := session.Context{UserID: 8, Role: entity.RoleAdmin, CompanyID: 4}
	out, err := uc.ListMenus(context.Background(), sess, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Submenus, 2)
}

func TestListMenus_RolDesconocido_AccesoDenegado(t *testing.T) {
	uc := navUC(&fakeNavRepo{}, config.AdminScopePerCompany)

	sess := session.Context{UserID: 8, Role: entity.RoleUnknown, CompanyID: 4}
	_, err := uc.ListMenus(context.Background(), sess, 1)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

// Menú sin submenús activos (LEFT JOIN con NULL): sigue listándose como hoja.
func TestListMenus_SuperusuarioVeMenuSinSubmenus(t *testing.T) {
	repo := &fakeNavRepo{
		allMenus: map[int64][]repository.MenuRow{
			1: {{MenuID: 9, MenuName: "Resumen", MenuType: entity.MenuTypeDashboard}},
		},
	}
	uc := navUC(repo, config.AdminScopePerCompany)

	sess := session.Context{UserID: 5, Role: entity.RoleSuperuser, CompanyID: 1}
	out, err := uc.ListMenus(context.Background(), sess, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(9), out[0].ID)
	assert.Empty(t, out[0].Submenus)
	assert.NotNil(t, out[0].Submenus, "submenus debe serializar como [] y no null")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo rol User (alice, empresa 7, permiso submenu 42)
// ──────────────────────────────────────────────────────────────────────────────

func TestListNavigation_EscenarioUsuario(t *testing.T) {
	repo := &fakeNavRepo{
		userModules: []*entity.Module{{ID: 1, Name: "Operaciones"}},
		userMenus: map[int64][]repository.MenuRow{
			1: {menuRow(5, "Movimientos", entity.MenuTypeTransaction, 42, "Registrar", "/mov/registrar")},
			// Módulo 2 sin permisos: la consulta no devuelve filas.
		},
	}
	uc := navUC(repo, config.AdminScopePerCompany)
	sess := session.Context{UserID: 10, Name: "Alice", Role: entity.RoleUser, CompanyID: 7}

	modules, err := uc.ListModules(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, int64(1), modules[0].ID)
	assert.Equal(t, int64(10), repo.gotUserID, "la consulta debe scopearse por usuario")
	assert.Equal(t, int64(7), repo.gotCompanyID, "la consulta debe scopearse por empresa")

	menus, err := uc.ListMenus(context.Background(), sess, 1)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, int64(5), menus[0].ID)
	require.Len(t, menus[0].Submenus, 1)
	assert.Equal(t, int64(42), menus[0].Submenus[0].ID)
	assert.Equal(t, "/mov/registrar", menus[0].Submenus[0].RedirectPage)

	// Módulo sin ningún permiso: para el rol User la lista simplemente queda
	// vacía (el JOIN estricto no devuelve filas).
	empty, err := uc.ListMenus(context.Background(), sess, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupación y orden
// ──────────────────────────────────────────────────────────────────────────────

func TestListMenus_OrdenPorGrupoDeTipoYSubmenusPorID(t *testing.T) {
	repo := &fakeNavRepo{
		allMenus: map[int64][]repository.MenuRow{
			1: {
				menuRow(20, "Ajustes", entity.MenuTypeSetting, 91, "Parámetros", "/params"),
				menuRow(11, "Kardex", entity.MenuTypeReports, 70, "Por bodega", "/kardex"),
				menuRow(5, "Inicio", entity.MenuTypeDashboard, 42, "Resumen", "/resumen"),
				menuRow(5, "Inicio", entity.MenuTypeDashboard, 41, "Indicadores", "/kpi"),
			},
		},
	}
	uc := navUC(repo, config.AdminScopePerCompany)

	sess := session.Context{UserID: 5, Role: entity.RoleSuperuser, CompanyID: 1}
	out, err := uc.ListMenus(context.Background(), sess, 1)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Secuencia fija de grupos: Dashboard, ..., Reports, Setting.
	assert.Equal(t, entity.MenuTypeDashboard, out[0].Type)
	assert.Equal(t, entity.MenuTypeReports, out[1].Type)
	assert.Equal(t, entity.MenuTypeSetting, out[2].Type)

	// Submenús ordenados por id aunque las filas llegaran desordenadas.
	require.Len(t, out[0].Submenus, 2)
	assert.Equal(t, int64(41), out[0].Submenus[0].ID)
	assert.Equal(t, int64(42), out[0].Submenus[1].ID)
}
