package usecase

import (
	"context"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
	"github.com/jhoicas/Portal-api/internal/domain/session"
)

// CompanyUseCase consultas de empresa scopeadas por la sesión.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// ActiveCompany nombre de la empresa activa de la sesión.
// ErrNotFound si el id del token ya no existe en el catálogo.
func (uc *CompanyUseCase) ActiveCompany(ctx context.Context, sess session.Context) (*dto.ActiveCompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ActiveCompanyResponse{Name: company.Name}, nil
}

// ListForSession empresas entre las que la sesión puede cambiar: todas para
// superusuarios, las de membresía activa para el resto. Orden por nombre.
func (uc *CompanyUseCase) ListForSession(ctx context.Context, sess session.Context) ([]dto.CompanyResponse, error) {
	var (
		companies []*entity.Company
		err       error
	)
	if sess.Role == entity.RoleSuperuser {
		companies, err = uc.repo.ListAll(ctx)
	} else {
		companies, err = uc.repo.ListForUser(ctx, sess.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.CompanyResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
