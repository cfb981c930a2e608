package repository

import (
	"context"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para UserProfile (DIP).
// Vive fuera del almacén de documentos porque auth necesita búsqueda por email.
type UserRepository interface {
	Create(ctx context.Context, user *entity.UserProfile) error
	GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	Update(ctx context.Context, user *entity.UserProfile) error
	Delete(ctx context.Context, uid string) error
}
