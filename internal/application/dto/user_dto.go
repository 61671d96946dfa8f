package dto

// CreateUserRequest alta de usuario desde la pantalla de administración.
// El password llega en texto y se hashea en el caso de uso.
type CreateUserRequest struct {
	UserCategory string `json:"user_category" validate:"required,oneof=Internal External"`
	EmployeeID   int64  `json:"employee_id" validate:"omitempty"`
	Username     string `json:"username" validate:"required,max=200"`
	LoginName    string `json:"login_name" validate:"required,max=100"`
	MobileNo     string `json:"mobile_no" validate:"omitempty"`
	EmailID      string `json:"email_id" validate:"omitempty,email"`
	Password     string `json:"password" validate:"required,min=8"`
	UserType     string `json:"user_type" validate:"required"`
}

// EmployeeResponse empleado activo para el selector de usuarios internos.
type EmployeeResponse struct {
	EmployeeID int64  `json:"employee_id"`
	FullName   string `json:"full_name"`
}
