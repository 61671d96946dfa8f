package dto

// ModuleResponse módulo visible para la sesión.
type ModuleResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IconPath string `json:"icon_path"`
}

// SubmenuResponse hoja navegable dentro de un menú.
type SubmenuResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	RedirectPage string `json:"redirect_page"`
}

// MenuResponse menú con sus submenús permitidos, ya agrupado y ordenado.
type MenuResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Submenus []SubmenuResponse `json:"submenus"`
}
