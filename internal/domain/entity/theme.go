package entity

// Theme paleta de colores de la interfaz. Un tema marcado default aplica a
// los usuarios sin preferencia guardada.
type Theme struct {
	ID              int64
	Name            string
	IsDefault       bool
	NavbarBg        string
	SidebarBg       string
	ModuleBg        string
	FooterBg        string
	MenuSubmenuBg   string
	CurrentModuleBg string
	MtrsColor       string
	NavbarFontColor string
	MenuHeaderBg    string
}
