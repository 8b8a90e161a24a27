package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/brico-pos/internal/application/auth"
	"github.com/tu-usuario/brico-pos/internal/application/dto"
	"github.com/tu-usuario/brico-pos/internal/domain"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/brico-pos/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users       map[int64]entity.User
	nextID      int64
	lastLoginID int64
	lookupErr   error // fuerza el fallo de GetByUsername/GetByEmail
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]entity.User{}}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.users[f.nextID] = cp
	return f.nextID, nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, id int64) error {
	f.lastLoginID = id
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-pruebas", ExpMinutes: 60, Issuer: "brico-pos-test"}

func registerPierre(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "pierre",
		Email:    "pierre@brico.fr",
		Password: "secret123",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el registro hashea el password (nunca se guarda en claro) y asigna
// rol employee por defecto.
func TestRegister_HasheaYAsignaRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out := registerPierre(t, uc)

	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.True(t, out.IsActive)

	stored := repo.users[out.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

// Caso 2: username o email repetidos → ErrDuplicate.
func TestRegister_Duplicados(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerPierre(t, uc)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "pierre", Email: "otro@brico.fr", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "username repetido")

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Username: "otro", Email: "pierre@brico.fr", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "email repetido")
}

// Caso 2b: si la comprobación de duplicados falla por almacenamiento, el
// error se propaga; un fallo de lectura nunca se interpreta como "no existe".
func TestRegister_FalloEnPrecheck(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupErr = errors.New("conexión rechazada")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "pierre", Email: "pierre@brico.fr", Password: "secret123",
	})
	require.ErrorIs(t, err, repo.lookupErr)
	assert.Empty(t, repo.users, "no debe llegar a Create")
}

// Caso 3: password corto → error de validación que nombra el campo.
func TestRegister_PasswordCorto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ana", Email: "ana@brico.fr", Password: "123",
	})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "password", ve.Field)
}

// Caso 4: login correcto devuelve un JWT verificable con los datos del
// usuario y estampa last_login.
func TestLogin_GeneraTokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	created := registerPierre(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "pierre", Password: "secret123"})
	require.NoError(t, err)

	userID, username, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err, "el token debe verificar con el mismo secreto")
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "pierre", username)
	assert.Equal(t, entity.RoleEmployee, role)
	assert.Equal(t, created.ID, repo.lastLoginID, "login estampa last_login")
}

// Caso 5: usuario inexistente y password incorrecto se distinguen en el
// dominio pero ambos terminan en 401 en el handler.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registerPierre(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "pierre", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 6: cuenta desactivada → ErrForbidden aunque el password sea correcto.
func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	created := registerPierre(t, uc)

	u := repo.users[created.ID]
	u.IsActive = false
	repo.users[created.ID] = u

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "pierre", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
