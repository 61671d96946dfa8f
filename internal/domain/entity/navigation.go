package entity

// Tipos de menú. Agrupan los menús de un módulo en un orden fijo de despliegue.
const (
	MenuTypeDashboard   = "Dashboard"
	MenuTypeMaster      = "Master"
	MenuTypeTransaction = "Transaction"
	MenuTypeReports     = "Reports"
	MenuTypeSetting     = "Setting"
)

// menuTypeOrder posición de cada grupo en la barra lateral.
var menuTypeOrder = map[string]int{
	MenuTypeDashboard:   0,
	MenuTypeMaster:      1,
	MenuTypeTransaction: 2,
	MenuTypeReports:     3,
	MenuTypeSetting:     4,
}

// MenuTypeRank devuelve la posición del grupo; tipos desconocidos van al final.
func MenuTypeRank(menuType string) int {
	if rank, ok := menuTypeOrder[menuType]; ok {
		return rank
	}
	return len(menuTypeOrder)
}

// Module nivel superior de la jerarquía de navegación.
type Module struct {
	ID       int64
	Name     string
	IconPath string
	Status   int
}

// Menu pertenece a exactamente un Module.
type Menu struct {
	ID       int64
	ModuleID int64
	Name     string
	Type     string // ver constantes MenuType*
	Status   int
}

// Submenu hoja navegable; pertenece a exactamente un Menu.
type Submenu struct {
	ID           int64
	MenuID       int64
	Name         string
	RedirectPage string
	Status       int
}

// UserRight registro de permiso: vincula un usuario (o un rol, según la forma
// del grant) con un módulo y opcionalmente un submenu dentro de una empresa.
// SubmenuID = 0 en grants a nivel módulo (forma usada por el rol Admin).
type UserRight struct {
	ID        int64
	UserID    int64
	CompanyID int64
	ModuleID  int64
	SubmenuID int64
	Role      Role // rol al que aplica el grant
}
