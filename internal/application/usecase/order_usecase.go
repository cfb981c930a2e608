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

// OrderService CRUD de pedidos. Nombre y precio de la prenda se copian al
// crear (snapshot): un edit o borrado posterior de la prenda no toca el
// pedido, por diseño.
type OrderService struct {
	col      collection[entity.Order]
	garments collection[entity.Garment]
	scopes   *ScopeResolver
}

// NewOrderService construye el servicio.
func NewOrderService(store repository.DocumentStore, scopes *ScopeResolver) *OrderService {
	return &OrderService{
		col:      newCollection[entity.Order](store, repository.CollectionOrders),
		garments: newCollection[entity.Garment](store, repository.CollectionGarments),
		scopes:   scopes,
	}
}

// Save crea un pedido. Si viene garmentId y faltan nombre o precio, se toman
// de la prenda referenciada como snapshot. Estado vacío arranca en Pendiente.
func (s *OrderService) Save(ctx context.Context, callerID string, in dto.SaveOrderRequest) (*dto.OrderResponse, error) {
	if in.GarmentID != "" && (in.GarmentName == "" || in.Price.IsZero()) {
		g, err := s.garments.getByID(ctx, in.GarmentID)
		if err != nil {
			return nil, err
		}
		if g != nil {
			if in.GarmentName == "" {
				in.GarmentName = g.Name
			}
			if in.Price.IsZero() {
				in.Price = g.Price
			}
			if in.Size == "" {
				in.Size = g.Size
			}
		}
	}
	if err := validate.Required(map[string]any{
		"clientName":  in.ClientName,
		"garmentName": in.GarmentName,
	}, "clientName", "garmentName"); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = entity.StatusPendiente
	}
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	o, err := s.col.save(ctx, callerID, func(id string, now time.Time) entity.Order {
		return entity.Order{
			ID:              id,
			ClientName:      in.ClientName,
			GarmentName:     in.GarmentName,
			GarmentID:       in.GarmentID,
			Size:            in.Size,
			Price:           in.Price,
			PaidAmount:      in.PaidAmount,
			Status:          in.Status,
			AppointmentDate: in.AppointmentDate,
			DeliveryDate:    in.DeliveryDate,
			OwnerID:         callerID,
			CreatedAt:       now,
		}
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// GetByID obtiene un pedido por ID; (nil, nil) si no existe.
func (s *OrderService) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := s.col.getByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// List lista los pedidos visibles para el llamador.
func (s *OrderService) List(ctx context.Context, callerID, role string) ([]*dto.OrderResponse, error) {
	list, err := s.col.list(ctx, s.scopes.Resolve(ctx, callerID, role))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Update mezcla campos parciales. Si cambia el estado se valida contra el enum.
func (s *OrderService) Update(ctx context.Context, callerID, role, id string, fields map[string]any) error {
	if raw, ok := fields["status"]; ok {
		status, isStr := raw.(string)
		if !isStr || !entity.ValidOrderStatus(status) {
			return domain.ErrInvalidInput
		}
	}
	return s.col.update(ctx, s.scopes.Resolve(ctx, callerID, role), id, fields)
}

// Remove elimina el pedido.
func (s *OrderService) Remove(ctx context.Context, callerID, role, id string) error {
	return s.col.remove(ctx, s.scopes.Resolve(ctx, callerID, role), id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              o.ID,
		ClientName:      o.ClientName,
		GarmentName:     o.GarmentName,
		GarmentID:       o.GarmentID,
		Size:            o.Size,
		Price:           o.Price,
		PaidAmount:      o.PaidAmount,
		Balance:         o.Balance(),
		Status:          o.Status,
		AppointmentDate: o.AppointmentDate,
		DeliveryDate:    o.DeliveryDate,
		OwnerID:         o.OwnerID,
		CreatedAt:       o.CreatedAt,
	}
}
