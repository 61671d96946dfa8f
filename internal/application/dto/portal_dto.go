package dto

import "time"

// NotificationResponse entrada de la bandeja de notificaciones.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	FromUser  string    `json:"from_username"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkNotificationReadRequest marca una notificación como leída.
type MarkNotificationReadRequest struct {
	NotificationID int64 `json:"notification_id" validate:"required"`
}

// ContactResponse entrada del directorio de contactos.
type ContactResponse struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Remark  string `json:"remark"`
}

// ThemeResponse paleta completa del tema aplicado al usuario.
type ThemeResponse struct {
	NavbarBg        string `json:"navbar_bg"`
	SidebarBg       string `json:"sidebar_bg"`
	ModuleBg        string `json:"module_bg"`
	FooterBg        string `json:"footer_bg"`
	MenuSubmenuBg   string `json:"menu_submenu_bg"`
	CurrentModuleBg string `json:"current_module_bg"`
	MtrsColor       string `json:"mtrs_color"`
	NavbarFontColor string `json:"navbar_font_color"`
	MenuHeaderBg    string `json:"menu_header_bg"`
}

// ThemeListItem entrada del listado de temas disponibles.
type ThemeListItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NavbarBg string `json:"navbar_bg"`
}

// SelectThemeRequest guarda la preferencia de tema del usuario.
type SelectThemeRequest struct {
	ThemeID int64 `json:"theme_id" validate:"required"`
}

// SubscriptionResponse estado de la suscripción del portal.
type SubscriptionResponse struct {
	IsExpired bool `json:"is_expired"`
}
