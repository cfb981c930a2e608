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

// GarmentService CRUD de prendas del catálogo.
type GarmentService struct {
	col    collection[entity.Garment]
	scopes *ScopeResolver
}

// NewGarmentService construye el servicio.
func NewGarmentService(store repository.DocumentStore, scopes *ScopeResolver) *GarmentService {
	return &GarmentService{
		col:    newCollection[entity.Garment](store, repository.CollectionGarments),
		scopes: scopes,
	}
}

// Save crea una prenda estampando dueño y fecha. Los costos no pueden ser
// negativos; la ganancia es derivada y no se persiste como fuente de verdad.
func (s *GarmentService) Save(ctx context.Context, callerID string, in dto.SaveGarmentRequest) (*dto.GarmentResponse, error) {
	if err := validate.Required(map[string]any{"name": in.Name, "price": in.Price}, "name", "price"); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() || in.LaborCost.IsNegative() || in.TransportCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	materials := make([]entity.GarmentMaterial, 0, len(in.Materials))
	for _, m := range in.Materials {
		if m.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		materials = append(materials, entity.GarmentMaterial{
			MaterialName:  m.MaterialName,
			Cost:          m.Cost,
			QuantityLabel: m.QuantityLabel,
		})
	}
	g, err := s.col.save(ctx, callerID, func(id string, now time.Time) entity.Garment {
		return entity.Garment{
			ID:            id,
			Name:          in.Name,
			Size:          in.Size,
			Price:         in.Price,
			LaborCost:     in.LaborCost,
			TransportCost: in.TransportCost,
			Materials:     materials,
			OwnerID:       callerID,
			CreatedAt:     now,
		}
	})
	if err != nil {
		return nil, err
	}
	return toGarmentResponse(g), nil
}

// GetByID obtiene una prenda por ID; (nil, nil) si no existe.
func (s *GarmentService) GetByID(ctx context.Context, id string) (*dto.GarmentResponse, error) {
	g, err := s.col.getByID(ctx, id)
	if err != nil || g == nil {
		return nil, err
	}
	return toGarmentResponse(g), nil
}

// List lista las prendas visibles para el llamador según su rol efectivo.
func (s *GarmentService) List(ctx context.Context, callerID, role string) ([]*dto.GarmentResponse, error) {
	list, err := s.col.list(ctx, s.scopes.Resolve(ctx, callerID, role))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GarmentResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGarmentResponse(g))
	}
	return out, nil
}

// Update mezcla campos parciales sin re-estampar dueño ni fecha.
func (s *GarmentService) Update(ctx context.Context, callerID, role, id string, fields map[string]any) error {
	return s.col.update(ctx, s.scopes.Resolve(ctx, callerID, role), id, fields)
}

// Remove elimina la prenda (borrado duro).
func (s *GarmentService) Remove(ctx context.Context, callerID, role, id string) error {
	return s.col.remove(ctx, s.scopes.Resolve(ctx, callerID, role), id)
}

func toGarmentResponse(g *entity.Garment) *dto.GarmentResponse {
	materials := make([]dto.GarmentMaterialRequest, 0, len(g.Materials))
	for _, m := range g.Materials {
		materials = append(materials, dto.GarmentMaterialRequest{
			MaterialName:  m.MaterialName,
			Cost:          m.Cost,
			QuantityLabel: m.QuantityLabel,
		})
	}
	return &dto.GarmentResponse{
		ID:            g.ID,
		Name:          g.Name,
		Size:          g.Size,
		Price:         g.Price,
		LaborCost:     g.LaborCost,
		TransportCost: g.TransportCost,
		Materials:     materials,
		Profit:        g.Profit(),
		OwnerID:       g.OwnerID,
		CreatedAt:     g.CreatedAt,
	}
}
