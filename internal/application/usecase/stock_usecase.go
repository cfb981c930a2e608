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

// StockService CRUD de existencias de prendas confeccionadas.
type StockService struct {
	col      collection[entity.StockItem]
	garments collection[entity.Garment]
	scopes   *ScopeResolver
}

// NewStockService construye el servicio.
func NewStockService(store repository.DocumentStore, scopes *ScopeResolver) *StockService {
	return &StockService{
		col:      newCollection[entity.StockItem](store, repository.CollectionStock),
		garments: newCollection[entity.Garment](store, repository.CollectionGarments),
		scopes:   scopes,
	}
}

// Save crea una existencia. GarmentName se desnormaliza desde la prenda si
// viene vacío; la cantidad no puede ser negativa.
func (s *StockService) Save(ctx context.Context, callerID string, in dto.SaveStockItemRequest) (*entity.StockItem, error) {
	if in.GarmentName == "" && in.GarmentID != "" {
		g, err := s.garments.getByID(ctx, in.GarmentID)
		if err != nil {
			return nil, err
		}
		if g != nil {
			in.GarmentName = g.Name
			if in.Size == "" {
				in.Size = g.Size
			}
		}
	}
	if err := validate.Required(map[string]any{"garmentName": in.GarmentName}, "garmentName"); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.col.save(ctx, callerID, func(id string, now time.Time) entity.StockItem {
		return entity.StockItem{
			ID:          id,
			GarmentID:   in.GarmentID,
			GarmentName: in.GarmentName,
			Size:        in.Size,
			Quantity:    in.Quantity,
			Color:       in.Color,
			OwnerID:     callerID,
			CreatedAt:   now,
		}
	})
}

// GetByID obtiene una existencia por ID; (nil, nil) si no existe.
func (s *StockService) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	return s.col.getByID(ctx, id)
}

// List lista las existencias visibles para el llamador.
func (s *StockService) List(ctx context.Context, callerID, role string) ([]*entity.StockItem, error) {
	return s.col.list(ctx, s.scopes.Resolve(ctx, callerID, role))
}

// Update mezcla campos parciales; una cantidad negativa se rechaza.
func (s *StockService) Update(ctx context.Context, callerID, role, id string, fields map[string]any) error {
	if raw, ok := fields["quantity"]; ok {
		if qty, isNum := raw.(float64); !isNum || qty < 0 {
			return domain.ErrInvalidInput
		}
	}
	return s.col.update(ctx, s.scopes.Resolve(ctx, callerID, role), id, fields)
}

// Remove elimina la existencia.
func (s *StockService) Remove(ctx context.Context, callerID, role, id string) error {
	return s.col.remove(ctx, s.scopes.Resolve(ctx, callerID, role), id)
}
