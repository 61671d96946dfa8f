package dto

// CompanyResponse empresa visible para la sesión.
type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActiveCompanyResponse nombre de la empresa activa de la sesión.
type ActiveCompanyResponse struct {
	Name string `json:"company_name"`
}
