package repository

import (
	"context"

	"github.com/jhoicas/Portal-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company y las
// membresías usuario↔empresa.
type CompanyRepository interface {
	// GetByID devuelve (nil, nil) si la empresa no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// ListAll todas las empresas, orden ascendente por nombre (superusuarios).
	ListAll(ctx context.Context) ([]*entity.Company, error)
	// ListForUser empresas con membresía activa del usuario, orden por nombre.
	ListForUser(ctx context.Context, userID int64) ([]*entity.Company, error)
	// DefaultCompanyID empresa de la membresía default+activa del usuario.
	// found=false cuando no hay ninguna.
	DefaultCompanyID(ctx context.Context, userID int64) (companyID int64, found bool, err error)
	// HasActiveMembership valida la pertenencia antes de un cambio de empresa.
	HasActiveMembership(ctx context.Context, userID, companyID int64) (bool, error)
}
