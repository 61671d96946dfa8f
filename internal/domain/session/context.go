// Package session define el contexto de sesión: el valor inmutable por request
// que identifica al usuario actuante, su rol y la empresa activa.
package session

import (
	"github.com/jhoicas/Portal-api/internal/domain/entity"
)

// Context claims verificados de una sesión. Se reconstruye desde el token en
// cada request (nunca se guarda server-side) y atraviesa sin mutarse todas las
// decisiones de autorización. El rol ya viene parseado al tipo cerrado.
type Context struct {
	UserID    int64
	Name      string
	Role      entity.Role
	CompanyID int64
}

// WithCompany devuelve una copia del contexto con otra empresa activa.
// Identidad y rol quedan intactos; es la única mutación permitida y solo
// ocurre al cambiar de empresa, que re-firma el token.
func (c Context) WithCompany(companyID int64) Context {
	c.CompanyID = companyID
	return c
}
