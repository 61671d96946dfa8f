package entity

import "time"

// Notification mensaje interno dirigido a un usuario dentro de una empresa.
type Notification struct {
	ID        int64
	ToUserID  int64
	FromUser  string // nombre del remitente, resuelto en la consulta
	CompanyID int64
	Subject   string
	Message   string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

// Contact entrada del directorio de contactos de una empresa.
type Contact struct {
	ID        int64
	CompanyID int64
	Name      string
	Mobile    string
	Email     string
	Address   string
	Remark    string
}
