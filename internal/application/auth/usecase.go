package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/repository"
	"github.com/jhoicas/Portal-api/internal/domain/session"
	"github.com/jhoicas/Portal-api/pkg/jwt"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

// JWTConfig configuración para la generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase emisión de credenciales: login, cambio de empresa y cambio de
// contraseña. Es el único punto que firma tokens.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
	// superuserCompanyID empresa asignada a superusuarios (no tienen membresía).
	superuserCompanyID int64
	log                *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig, superuserCompanyID int64, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:           userRepo,
		companyRepo:        companyRepo,
		jwtCfg:             jwtCfg,
		superuserCompanyID: superuserCompanyID,
		log:                log,
	}
}

// Login verifica credenciales, resuelve la empresa inicial y firma el token.
//
// La respuesta nunca distingue "login inexistente" de "password incorrecto";
// ambos son ErrInvalidCredentials. La falta de empresa default es un fallo de
// negocio aparte (ErrNoDefaultCompany), no un 500.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindActiveByLogin(ctx, in.LoginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	companyID, err := uc.resolveInitialCompany(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.signSession(session.Context{
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, err
	}

	// Auditoría: sin efectos sobre el almacén, solo la línea de log.
	uc.log.Info().
		Str("login", in.LoginID).
		Str("role", user.Role.String()).
		Int64("company_id", companyID).
		Msg("inicio de sesión")

	return &dto.LoginResponse{Message: "Inicio de sesión exitoso", Token: token}, nil
}

// resolveInitialCompany empresa activa al iniciar sesión: fija para
// superusuarios, membresía default+activa para el resto.
func (uc *AuthUseCase) resolveInitialCompany(ctx context.Context, user *entity.User) (int64, error) {
	if user.Role == entity.RoleSuperuser {
		return uc.superuserCompanyID, nil
	}
	companyID, found, err := uc.companyRepo.DefaultCompanyID(ctx, user.ID)
	if err != nil {
		return 0, err
	}
	if !found {
		uc.log.Warn().
			Str("login", user.Login).
			Int64("user_id", user.ID).
			Msg("login rechazado: sin empresa default activa")
		return 0, domain.ErrNoDefaultCompany
	}
	return companyID, nil
}

// SwitchCompany re-firma el token con otra empresa activa, sin re-autenticar.
// A diferencia del portal original, exige membresía activa en la empresa
// destino (los superusuarios quedan exentos: no se scopean por membresía).
func (uc *AuthUseCase) SwitchCompany(ctx context.Context, sess session.Context, newCompanyID int64) (*dto.SwitchCompanyResponse, error) {
	if sess.Role != entity.RoleSuperuser {
		member, err := uc.companyRepo.HasActiveMembership(ctx, sess.UserID, newCompanyID)
		if err != nil {
			return nil, err
		}
		if !member {
			uc.log.Warn().
				Int64("user_id", sess.UserID).
				Int64("company_id", newCompanyID).
				Msg("cambio de empresa rechazado: sin membresía activa")
			return nil, domain.ErrNotMember
		}
	}

	token, err := uc.signSession(sess.WithCompany(newCompanyID))
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("user_id", sess.UserID).
		Str("role", sess.Role.String()).
		Int64("company_id", newCompanyID).
		Msg("empresa activa cambiada")

	return &dto.SwitchCompanyResponse{Message: "Empresa cambiada exitosamente", Token: token}, nil
}

// ChangePassword verifica la contraseña anterior y persiste el nuevo hash.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, userID, string(hash))
}

func (uc *AuthUseCase) signSession(sess session.Context) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:    sess.UserID,
		Name:      sess.Name,
		Role:      sess.Role.String(),
		CompanyID: sess.CompanyID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
