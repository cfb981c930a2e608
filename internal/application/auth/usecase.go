package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/jwt"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/validate"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste el perfil
// con rol "user". Un admin se designa editando el perfil, nunca al registrarse.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validate.Required(map[string]any{
		"email":    in.Email,
		"password": in.Password,
	}, "email", "password"); err != nil {
		return nil, err
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.DisplayName
	if name == "" {
		name = in.Email
	}
	user := &entity.UserProfile{
		UID:          uuid.New().String(),
		Email:        in.Email,
		DisplayName:  name,
		Role:         entity.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Profile devuelve el perfil del usuario autenticado; (nil, nil) si no existe.
func (uc *AuthUseCase) Profile(ctx context.Context, uid string) (*dto.UserResponse, error) {
	if uid == "" {
		return nil, domain.ErrUnauthenticated
	}
	user, err := uc.users.GetByUID(ctx, uid)
	if err != nil || user == nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.UserProfile) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
