package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/retry"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// También pasa por el ejecutor de reintentos: el backend de auth comparte la
// misma infraestructura remota que el almacén de documentos.
type UserRepo struct {
	q    Querier
	opts retry.Options
}

// NewUserRepository construye el adaptador de persistencia para perfiles.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q, opts: retry.Options{ShouldRetry: ShouldRetry}}
}

// Create persiste un nuevo perfil.
func (r *UserRepo) Create(ctx context.Context, user *entity.UserProfile) error {
	query := `
		INSERT INTO users (uid, email, display_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := retry.Do(ctx, "insert user", func(ctx context.Context) (struct{}, error) {
		_, err := r.q.Exec(ctx, query,
			user.UID, user.Email, user.DisplayName, user.Role, user.PasswordHash, user.CreatedAt)
		return struct{}{}, err
	}, r.opts)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUID obtiene un perfil por UID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	return r.find(ctx, `WHERE uid = $1`, uid)
}

// GetByEmail obtiene un perfil por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	return r.find(ctx, `WHERE email = $1`, email)
}

func (r *UserRepo) find(ctx context.Context, where string, arg any) (*entity.UserProfile, error) {
	query := `
		SELECT uid, email, display_name, role, password_hash, created_at
		FROM users ` + where
	user, err := retry.Do(ctx, "get user", func(ctx context.Context) (*entity.UserProfile, error) {
		var u entity.UserProfile
		err := r.q.QueryRow(ctx, query, arg).Scan(
			&u.UID, &u.Email, &u.DisplayName, &u.Role, &u.PasswordHash, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &u, nil
	}, r.opts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update actualiza un perfil (email, nombre y rol; el hash solo si viene no vacío).
func (r *UserRepo) Update(ctx context.Context, user *entity.UserProfile) error {
	query := `
		UPDATE users SET email = $2, display_name = $3, role = $4,
			password_hash = CASE WHEN $5 = '' THEN password_hash ELSE $5 END
		WHERE uid = $1`
	_, err := retry.Do(ctx, "update user", func(ctx context.Context) (struct{}, error) {
		_, err := r.q.Exec(ctx, query,
			user.UID, user.Email, user.DisplayName, user.Role, user.PasswordHash)
		return struct{}{}, err
	}, r.opts)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un perfil por UID.
func (r *UserRepo) Delete(ctx context.Context, uid string) error {
	_, err := retry.Do(ctx, "delete user", func(ctx context.Context) (struct{}, error) {
		_, err := r.q.Exec(ctx, `DELETE FROM users WHERE uid = $1`, uid)
		return struct{}{}, err
	}, r.opts)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
