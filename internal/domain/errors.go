package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los mapean a
// códigos HTTP; ver internal/interfaces/http.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	// ErrInvalidCredentials cubre tanto login inexistente como password
	// incorrecto: la respuesta no distingue para no permitir enumerar cuentas.
	ErrInvalidCredentials = errors.New("credenciales inválidas o cuenta inactiva")
	// ErrNoDefaultCompany el usuario no tiene membresía default activa; es un
	// 403 de negocio, no un fallo interno.
	ErrNoDefaultCompany = errors.New("sin empresa por defecto asignada")
	// ErrAccessDenied fallo de permisos a nivel menú (o rol no configurado).
	ErrAccessDenied = errors.New("acceso denegado")
	// ErrNotMember la empresa destino de un cambio no pertenece al usuario.
	ErrNotMember    = errors.New("el usuario no es miembro de la empresa")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)
