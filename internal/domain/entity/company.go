package entity

// Company organización/tenant del portal. Entidad de referencia estática.
type Company struct {
	ID   int64
	Name string
}

// UserCompany membresía usuario↔empresa. Como máximo una membresía
// default+activa por usuario; un usuario puede pertenecer a varias empresas
// pero autoriza contra exactamente una por sesión.
type UserCompany struct {
	UserID    int64
	CompanyID int64
	IsDefault bool
	Status    int
}
