package usecase

import (
	"context"
	"time"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/validate"
)

// ClientService CRUD de clientas del taller.
type ClientService struct {
	col    collection[entity.Client]
	scopes *ScopeResolver
}

// NewClientService construye el servicio.
func NewClientService(store repository.DocumentStore, scopes *ScopeResolver) *ClientService {
	return &ClientService{
		col:    newCollection[entity.Client](store, repository.CollectionClients),
		scopes: scopes,
	}
}

// Save crea una clienta estampando dueño y fecha.
func (s *ClientService) Save(ctx context.Context, callerID string, in dto.SaveClientRequest) (*entity.Client, error) {
	if err := validate.Required(map[string]any{"name": in.Name}, "name"); err != nil {
		return nil, err
	}
	return s.col.save(ctx, callerID, func(id string, now time.Time) entity.Client {
		return entity.Client{
			ID:           id,
			Name:         in.Name,
			Phone:        in.Phone,
			Notes:        in.Notes,
			Measurements: in.Measurements,
			OwnerID:      callerID,
			CreatedAt:    now,
		}
	})
}

// GetByID obtiene una clienta por ID; (nil, nil) si no existe.
func (s *ClientService) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return s.col.getByID(ctx, id)
}

// List lista las clientas visibles para el llamador.
func (s *ClientService) List(ctx context.Context, callerID, role string) ([]*entity.Client, error) {
	return s.col.list(ctx, s.scopes.Resolve(ctx, callerID, role))
}

// Update mezcla campos parciales (medidas incluidas) sin re-estampar sellos.
func (s *ClientService) Update(ctx context.Context, callerID, role, id string, fields map[string]any) error {
	return s.col.update(ctx, s.scopes.Resolve(ctx, callerID, role), id, fields)
}

// Remove elimina la clienta.
func (s *ClientService) Remove(ctx context.Context, callerID, role, id string) error {
	return s.col.remove(ctx, s.scopes.Resolve(ctx, callerID, role), id)
}
