package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
)

// Formatos heredados del portal: móviles de 10 dígitos que empiezan en 6-9.
var (
	mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UserUseCase alta de usuarios desde administración.
type UserUseCase struct {
	repo      repository.UserRepository
	employees repository.EmployeeRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, employees repository.EmployeeRepository) *UserUseCase {
	return &UserUseCase{repo: repo, employees: employees}
}

// Create valida, chequea unicidad (login, móvil, email, empleado) y persiste
// el usuario con el password hasheado. creatorID queda como columna de
// auditoría. Devuelve ErrInvalidInput en validaciones y ErrDuplicate en
// conflictos de unicidad.
func (uc *UserUseCase) Create(ctx context.Context, creatorID int64, in dto.CreateUserRequest) error {
	if in.Username == "" || in.LoginName == "" || in.Password == "" || in.UserType == "" || in.UserCategory == "" {
		return fmt.Errorf("%w: faltan campos obligatorios", domain.ErrInvalidInput)
	}
	internal := in.UserCategory == "Internal"
	if internal && in.EmployeeID == 0 {
		return fmt.Errorf("%w: empleado requerido para usuarios internos", domain.ErrInvalidInput)
	}
	if in.MobileNo != "" && !mobileRegex.MatchString(in.MobileNo) {
		return fmt.Errorf("%w: móvil inválido, 10 dígitos empezando en 6-9", domain.ErrInvalidInput)
	}
	if in.EmailID != "" && !emailRegex.MatchString(in.EmailID) {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}

	if internal {
		taken, err := uc.repo.EmployeeHasUser(ctx, in.EmployeeID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: el empleado ya tiene usuario", domain.ErrDuplicate)
		}
	}
	taken, err := uc.repo.LoginExists(ctx, in.LoginName)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: login en uso", domain.ErrDuplicate)
	}
	if in.MobileNo != "" {
		taken, err := uc.repo.MobileExists(ctx, in.MobileNo)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: móvil en uso", domain.ErrDuplicate)
		}
	}
	if in.EmailID != "" {
		taken, err := uc.repo.EmailExists(ctx, in.EmailID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: email en uso", domain.ErrDuplicate)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	category := entity.CategoryExternal
	employeeID := int64(0)
	if internal {
		category = entity.CategoryInternal
		employeeID = in.EmployeeID
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Username,
		Login:        in.LoginName,
		PasswordHash: string(hash),
		Role:         entity.ParseRole(in.UserType[:1]),
		Status:       entity.StatusActive,
		Category:     category,
		Mobile:       in.MobileNo,
		Email:        in.EmailID,
		EmployeeID:   employeeID,
		CreatedBy:    creatorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := uc.repo.Create(ctx, user); err != nil {
		return err
	}
	return nil
}

// ListActiveEmployees empleados activos para el selector de alta de usuarios.
func (uc *UserUseCase) ListActiveEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.EmployeeResponse{EmployeeID: e.ID, FullName: e.FullName()})
	}
	return out, nil
}
