package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión firmado.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// SwitchCompanyRequest entrada para cambiar la empresa activa de la sesión.
type SwitchCompanyRequest struct {
	NewCompanyID int64 `json:"new_company_id" validate:"required"`
}

// SwitchCompanyResponse token re-firmado con la nueva empresa.
type SwitchCompanyResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ChangePasswordRequest entrada para cambio de contraseña self-service.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
