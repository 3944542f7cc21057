package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

func newAuthUC() *auth.AuthUseCase {
	store := memory.NewStore()
	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
}

func TestRegisterUser_CreaYLoginDevuelveToken(t *testing.T) {
	uc := newAuthUC()

	created, err := uc.RegisterUser(dto.RegisterRequest{
		Username:        "jefe",
		Password:        "secreta123",
		PermissionLevel: entity.LevelAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "jefe", created.Username)
	assert.Equal(t, entity.LevelAdmin, created.PermissionLevel)

	resp, err := uc.Login(dto.LoginRequest{Username: "jefe", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)

	// El token lleva el nivel de permiso para el middleware.
	userID, username, level, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "jefe", username)
	assert.Equal(t, entity.LevelAdmin, level)
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "jefe", Password: "x1", PermissionLevel: entity.LevelViewer})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "jefe", Password: "x2", PermissionLevel: entity.LevelViewer})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_NivelFueraDeRango(t *testing.T) {
	uc := newAuthUC()
	for _, level := range []int{0, 4, -1} {
		_, err := uc.RegisterUser(dto.RegisterRequest{Username: "u", Password: "p", PermissionLevel: level})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "nivel %d debe rechazarse", level)
	}
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "jefe", Password: "correcta", PermissionLevel: entity.LevelOperator})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "jefe", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
