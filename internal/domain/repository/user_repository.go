package repository

import (
	"context"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindActiveByLogin busca por login excluyendo cuentas deshabilitadas.
	// Devuelve (nil, nil) si no existe.
	FindActiveByLogin(ctx context.Context, login string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// Comprobaciones de unicidad para alta de usuarios.
	LoginExists(ctx context.Context, login string) (bool, error)
	MobileExists(ctx context.Context, mobile string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EmployeeHasUser(ctx context.Context, employeeID int64) (bool, error)
}

// EmployeeRepository consulta de empleados activos (solo lectura).
type EmployeeRepository interface {
	ListActive(ctx context.Context) ([]*entity.Employee, error)
}
