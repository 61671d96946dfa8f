package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-api/internal/application/auth"
	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/session"
	pkgjwt "github.com/jhoicas/Portal-api/pkg/jwt"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

const (
	testSecret             = "test-secret-key-for-unit-tests"
	testIssuer             = "portal-pro-test"
	testExpMin             = 60
	testSuperuserCompanyID = int64(1)
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por login
	byID  map[int64]*entity.User
	// updatedHash captura el último UpdatePassword.
	updatedHash string
}

func (f *fakeUserRepo) FindActiveByLogin(_ context.Context, login string) (*entity.User, error) {
	u, ok := f.users[login]
	if !ok || u.Status == entity.StatusDisabled {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) (int64, error) { return 0, nil }

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ int64, hash string) error {
	f.updatedHash = hash
	return nil
}

func (f *fakeUserRepo) LoginExists(_ context.Context, _ string) (bool, error)      { return false, nil }
func (f *fakeUserRepo) MobileExists(_ context.Context, _ string) (bool, error)     { return false, nil }
func (f *fakeUserRepo) EmailExists(_ context.Context, _ string) (bool, error)      { return false, nil }
func (f *fakeUserRepo) EmployeeHasUser(_ context.Context, _ int64) (bool, error)   { return false, nil }

type fakeCompanyRepo struct {
	defaultCompany map[int64]int64    // userID -> companyID
	memberships    map[[2]int64]bool  // {userID, companyID}
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Empresa"}, nil
}
func (f *fakeCompanyRepo) ListAll(_ context.Context) ([]*entity.Company, error)   { return nil, nil }
func (f *fakeCompanyRepo) ListForUser(_ context.Context, _ int64) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) DefaultCompanyID(_ context.Context, userID int64) (int64, bool, error) {
	id, ok := f.defaultCompany[userID]
	return id, ok, nil
}
func (f *fakeCompanyRepo) HasActiveMembership(_ context.Context, userID, companyID int64) (bool, error) {
	return f.memberships[[2]int64{userID, companyID}], nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthUC(users *fakeUserRepo, companies *fakeCompanyRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, testSuperuserCompanyID, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_UsuarioConEmpresaDefault(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"alice": {ID: 10, Name: "Alice", Login: "alice", PasswordHash: hashOf(t, "secreta123"), Role: entity.RoleUser, Status: entity.StatusActive},
	}}
	companies := &fakeCompanyRepo{defaultCompany: map[int64]int64{10: 7}}
	uc := newAuthUC(users, companies)

	out, err := uc.Login(context.Background(), dto.LoginRequest{LoginID: "alice", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// Round-trip: el token reconstruye exactamente la sesión emitida.
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "U", claims.Role)
	assert.Equal(t, int64(7), claims.CompanyID)
}

func TestLogin_PasswordIncorrecto_CredencialesInvalidas(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"alice": {ID: 10, Login: "alice", PasswordHash: hashOf(t, "secreta123"), Role: entity.RoleUser, Status: entity.StatusActive},
	}}
	uc := newAuthUC(users, &fakeCompanyRepo{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{LoginID: "alice", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_LoginInexistente_MismoErrorQuePasswordIncorrecto(t *testing.T) {
	// La respuesta no debe permitir distinguir cuentas existentes.
	uc := newAuthUC(&fakeUserRepo{users: map[string]*entity.User{}}, &fakeCompanyRepo{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{LoginID: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_SinEmpresaDefault_ErrorDeNegocio(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"bob": {ID: 20, Login: "bob", PasswordHash: hashOf(t, "secreta123"), Role: entity.RoleUser, Status: entity.StatusActive},
	}}
	uc := newAuthUC(users, &fakeCompanyRepo{defaultCompany: map[int64]int64{}})

	_, err := uc.Login(context.Background(), dto.LoginRequest{LoginID: "bob", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrNoDefaultCompany)
}

func TestLogin_Superusuario_EmpresaFijaSinMembresia(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"root": {ID: 1, Name: "Root", Login: "root", PasswordHash: hashOf(t, "secreta123"), Role: entity.RoleSuperuser, Status: entity.StatusActive},
	}}
	// Ninguna membresía: el superusuario no las necesita.
	uc := newAuthUC(users, &fakeCompanyRepo{defaultCompany: map[int64]int64{}})

	out, err := uc.Login(context.Background(), dto.LoginRequest{LoginID: "root", Password: "secreta123"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, testSuperuserCompanyID, claims.CompanyID)
}

// ──────────────────────────────────────────────────────────────────────────────
// SwitchCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestSwitchCompany_SoloCambiaLaEmpresa(t *testing.T) {
	companies := &fakeCompanyRepo{memberships: map[[2]int64]bool{{10, 9}: true}}
	uc := newAuthUC(&fakeUserRepo{}, companies)

	sess := session.Context{UserID: 10, Name: "Alice", Role: entity.RoleUser, CompanyID: 7}
	out, err := uc.SwitchCompany(context.Background(), sess, 9)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), claims.UserID, "la identidad no debe cambiar")
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "U", claims.Role, "el rol no debe cambiar")
	assert.Equal(t, int64(9), claims.CompanyID, "solo cambia la empresa activa")
}

func TestSwitchCompany_SinMembresia_Rechazado(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{}, &fakeCompanyRepo{memberships: map[[2]int64]bool{}})

	sess := session.Context{UserID: 10, Role: entity.RoleUser, CompanyID: 7}
	_, err := uc.SwitchCompany(context.Background(), sess, 99)
	assert.ErrorIs(t, err, domain.ErrNotMember)
}

func TestSwitchCompany_SuperusuarioExentoDeMembresia(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{}, &fakeCompanyRepo{memberships: map[[2]int64]bool{}})

	sess := session.Context{UserID: 1, Role: entity.RoleSuperuser, CompanyID: 1}
	out, err := uc.SwitchCompany(context.Background(), sess, 42)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.CompanyID)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_AnteriorIncorrecta(t *testing.T) {
	users := &fakeUserRepo{byID: map[int64]*entity.User{
		10: {ID: 10, PasswordHash: hashOf(t, "actual")},
	}}
	uc := newAuthUC(users, &fakeCompanyRepo{})

	err := uc.ChangePassword(context.Background(), 10, dto.ChangePasswordRequest{OldPassword: "equivocada", NewPassword: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_UsuarioDesaparecido(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{byID: map[int64]*entity.User{}}, &fakeCompanyRepo{})

	err := uc.ChangePassword(context.Background(), 999, dto.ChangePasswordRequest{OldPassword: "x", NewPassword: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_PersisteNuevoHash(t *testing.T) {
	users := &fakeUserRepo{byID: map[int64]*entity.User{
		10: {ID: 10, PasswordHash: hashOf(t, "actual")},
	}}
	uc := newAuthUC(users, &fakeCompanyRepo{})

	err := uc.ChangePassword(context.Background(), 10, dto.ChangePasswordRequest{OldPassword: "actual", NewPassword: "nueva1234"})
	require.NoError(t, err)
	require.NotEmpty(t, users.updatedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.updatedHash), []byte("nueva1234")))
}
