package usecase

import (
	"context"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/access"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/logger"
)

// ScopeResolver resuelve el rol efectivo de un llamador y lo convierte en la
// capacidad cerrada access.Scope. El rol explícito (del token) tiene
// prioridad; si falta se consulta el perfil almacenado, y si el lookup falla
// o no hay perfil se asume usuario común. Aquí vive la única comparación de
// roles por string del sistema.
type ScopeResolver struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewScopeResolver construye el resolutor.
func NewScopeResolver(users repository.UserRepository, log *logger.Logger) *ScopeResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &ScopeResolver{users: users, log: log}
}

// Resolve determina el alcance del llamador. Sin identidad devuelve Nobody:
// un alcance que no lee nada y no puede tocar ningún registro.
func (r *ScopeResolver) Resolve(ctx context.Context, callerID, explicitRole string) access.Scope {
	if callerID == "" {
		return access.Nobody()
	}
	role := explicitRole
	if role == "" {
		profile, err := r.users.GetByUID(ctx, callerID)
		switch {
		case err != nil:
			r.log.Debug().Err(err).Str("uid", callerID).Msg("lookup de perfil falló, asumiendo rol user")
			role = entity.RoleUser
		case profile == nil:
			role = entity.RoleUser
		default:
			role = profile.Role
		}
	}
	if role == entity.RoleAdmin {
		return access.Admin()
	}
	return access.Owner(callerID)
}

// ListScoped es la única regla de autorización de lecturas del sistema,
// parametrizada por colección: admin lee todo, dueño solo lo propio, sin
// identidad se devuelve vacío sin tocar el almacén. Todo listado de entidades
// pasa por acá; ningún servicio implementa su propio filtro.
func ListScoped(ctx context.Context, store repository.DocumentStore, collection string, sc access.Scope) ([]*repository.Document, error) {
	if sc.Empty() {
		return nil, nil
	}
	if sc.IsAdmin() {
		return store.ListAll(ctx, collection)
	}
	return store.ListByOwner(ctx, collection, sc.OwnerID())
}
