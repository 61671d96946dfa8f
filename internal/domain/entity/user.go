package entity

import "time"

// Estados de registro usados en todas las tablas del portal.
const (
	StatusActive   = 1
	StatusDisabled = 2 // borrado lógico; los registros nunca se eliminan físicamente
)

// Categorías de usuario.
const (
	CategoryInternal = "I" // empleado de la empresa
	CategoryExternal = "E"
)

// User representa una cuenta del portal. El rol vive aquí como Role (tipo
// cerrado); el hash de password es bcrypt y nunca viaja en respuestas.
type User struct {
	ID           int64
	Name         string
	Login        string
	PasswordHash string
	Role         Role
	Status       int
	Category     string // I interno, E externo
	Mobile       string
	Email        string
	EmployeeID   int64 // 0 para usuarios externos
	CreatedBy    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Employee empleado activo elegible para vincular a un usuario interno.
type Employee struct {
	ID         int64
	Prefix     string
	FirstName  string
	MiddleName string
	LastName   string
	Status     int
}

// FullName arma el nombre completo colapsando espacios de partes vacías.
func (e Employee) FullName() string {
	parts := []string{e.Prefix, e.FirstName, e.MiddleName, e.LastName}
	name := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += p
	}
	return name
}
