package entity

import "strings"

// Role discrimina el conjunto de reglas de autorización que aplica a un usuario.
// Es un tipo cerrado: se parsea UNA vez al reconstruir la sesión desde el token
// y el resto del sistema compara contra las constantes, nunca contra strings sueltos.
type Role string

const (
	RoleSuperuser Role = "S" // ve todo, sin scoping por empresa ni permisos
	RoleAdmin     Role = "A" // permisos por rol admin (scoping por empresa configurable)
	RoleUser      Role = "U" // permisos individuales a nivel submenu
	RoleUnknown   Role = ""  // valor no reconocido: nada visible
)

// ParseRole normaliza (trim + mayúsculas) y clasifica el rol. Cualquier valor
// fuera del conjunto conocido degrada a RoleUnknown, no a error: la política
// del portal es "rol desconocido no ve nada".
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return RoleSuperuser
	case "A":
		return RoleAdmin
	case "U":
		return RoleUser
	default:
		return RoleUnknown
	}
}

// String implementa fmt.Stringer para logs.
func (r Role) String() string { return string(r) }
