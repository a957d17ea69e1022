package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba-muy-largo"

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
	return uc, repo
}

func TestSignup_CreaUsuarioCustomerConHash(t *testing.T) {
	uc, repo := newAuthUC(t)

	out, err := uc.Signup(dto.SignupRequest{
		Email:    "ana@ejemplo.com",
		Password: "contraseña-segura",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleCustomer, out.Role, "signup nunca otorga ADMIN")

	stored := repo.byEmail["ana@ejemplo.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-segura")))
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Signup(dto.SignupRequest{Email: "ana@ejemplo.com", Password: "contraseña-segura"})
	require.NoError(t, err)

	_, err = uc.Signup(dto.SignupRequest{Email: "ana@ejemplo.com", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConClaimsDelUsuario(t *testing.T) {
	uc, _ := newAuthUC(t)

	created, err := uc.Signup(dto.SignupRequest{
		Email:    "ana@ejemplo.com",
		Password: "contraseña-segura",
		Name:     "Ana",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "contraseña-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	assert.Equal(t, created.ID, out.User.ID)

	claims, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "ana@ejemplo.com", claims.Email)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Signup(dto.SignupRequest{Email: "ana@ejemplo.com", Password: "contraseña-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido_MismoError(t *testing.T) {
	uc, _ := newAuthUC(t)

	// Email inexistente y password malo responden igual: no se filtra qué
	// emails están registrados.
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
