package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/auth"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	pkgjwt "github.com/Andres05MD/Wingx-Stock-sub001/pkg/jwt"
)

// memUserRepo repositorio de usuarios en memoria para los tests.
type memUserRepo struct {
	byUID map[string]*entity.UserProfile
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUID: make(map[string]*entity.UserProfile)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.UserProfile) error {
	r.byUID[user.UID] = user
	return nil
}

func (r *memUserRepo) GetByUID(_ context.Context, uid string) (*entity.UserProfile, error) {
	return r.byUID[uid], nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.UserProfile, error) {
	for _, u := range r.byUID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.UserProfile) error {
	r.byUID[user.UID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, uid string) error {
	delete(r.byUID, uid)
	return nil
}

func testUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "wingx-stock-test",
	})
	return uc, repo
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	uc, repo := testUseCase()

	user, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@taller.com", Password: "clave123"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UID)
	assert.Equal(t, entity.RoleUser, user.Role, "nadie se registra como admin")
	assert.Equal(t, "ana@taller.com", user.DisplayName, "displayName vacío cae al email")

	stored := repo.byUID[user.UID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave123", stored.PasswordHash, "el password nunca se guarda en claro")

	t.Run("email duplicado", func(t *testing.T) {
		_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@taller.com", Password: "otra"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("campos faltantes", func(t *testing.T) {
		_, err := uc.Register(ctx, dto.RegisterRequest{Email: "x@y.com"})
		assert.Error(t, err)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	uc, _ := testUseCase()

	registered, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@taller.com", Password: "clave123"})
	require.NoError(t, err)

	t.Run("credenciales correctas emiten token con uid y rol", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@taller.com", Password: "clave123"})
		require.NoError(t, err)
		require.NotEmpty(t, out.Token)
		assert.Equal(t, registered.UID, out.User.UID)

		uid, role, err := pkgjwt.Parse("secreto-de-test", out.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.UID, uid)
		assert.Equal(t, entity.RoleUser, role)
	})

	t.Run("password incorrecto", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@taller.com", Password: "mala"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@taller.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestAuthUseCase_Profile(t *testing.T) {
	ctx := context.Background()
	uc, _ := testUseCase()

	registered, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@taller.com", Password: "clave123"})
	require.NoError(t, err)

	got, err := uc.Profile(ctx, registered.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana@taller.com", got.Email)

	t.Run("sin identidad", func(t *testing.T) {
		_, err := uc.Profile(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("perfil ausente es (nil, nil)", func(t *testing.T) {
		got, err := uc.Profile(ctx, "fantasma")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
