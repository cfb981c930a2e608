package usecase

import (
	"context"
	"time"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/dto"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/entity"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/validate"
)

// MaterialService CRUD de la lista de compras de materiales.
type MaterialService struct {
	col    collection[entity.Material]
	scopes *ScopeResolver
}

// NewMaterialService construye el servicio.
func NewMaterialService(store repository.DocumentStore, scopes *ScopeResolver) *MaterialService {
	return &MaterialService{
		col:    newCollection[entity.Material](store, repository.CollectionMaterials),
		scopes: scopes,
	}
}

// Save crea un ítem de la lista; arranca sin comprar.
func (s *MaterialService) Save(ctx context.Context, callerID string, in dto.SaveMaterialRequest) (*entity.Material, error) {
	if err := validate.Required(map[string]any{"name": in.Name}, "name"); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return s.col.save(ctx, callerID, func(id string, now time.Time) entity.Material {
		return entity.Material{
			ID:        id,
			Name:      in.Name,
			Quantity:  in.Quantity,
			Price:     in.Price,
			Source:    in.Source,
			Purchased: false,
			Notes:     in.Notes,
			OwnerID:   callerID,
			CreatedAt: now,
		}
	})
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (s *MaterialService) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	return s.col.getByID(ctx, id)
}

// List lista los ítems visibles para el llamador.
func (s *MaterialService) List(ctx context.Context, callerID, role string) ([]*entity.Material, error) {
	return s.col.list(ctx, s.scopes.Resolve(ctx, callerID, role))
}

// Update mezcla campos parciales (marcar comprado incluido).
func (s *MaterialService) Update(ctx context.Context, callerID, role, id string, fields map[string]any) error {
	return s.col.update(ctx, s.scopes.Resolve(ctx, callerID, role), id, fields)
}

// Remove elimina el ítem.
func (s *MaterialService) Remove(ctx context.Context, callerID, role, id string) error {
	return s.col.remove(ctx, s.scopes.Resolve(ctx, callerID, role), id)
}
