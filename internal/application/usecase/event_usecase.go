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

// EventService CRUD de eventos del calendario del taller.
type EventService struct {
	col    collection[entity.CalendarEvent]
	scopes *ScopeResolver
}

// NewEventService construye el servicio.
func NewEventService(store repository.DocumentStore, scopes *ScopeResolver) *EventService {
	return &EventService{
		col:    newCollection[entity.CalendarEvent](store, repository.CollectionEvents),
		scopes: scopes,
	}
}

// Save crea un evento; el tipo vacío cae en "other" y la fecha se trunca al día.
func (s *EventService) Save(ctx context.Context, callerID string, in dto.SaveEventRequest) (*entity.CalendarEvent, error) {
	if err := validate.Required(map[string]any{"title": in.Title}, "title"); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == "" {
		in.Type = entity.EventOther
	}
	if !entity.ValidEventType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	day := in.Date.Truncate(24 * time.Hour)
	return s.col.save(ctx, callerID, func(id string, now time.Time) entity.CalendarEvent {
		return entity.CalendarEvent{
			ID:        id,
			Title:     in.Title,
			Date:      day,
			Type:      in.Type,
			OwnerID:   callerID,
			CreatedAt: now,
		}
	})
}

// GetByID obtiene un evento por ID; (nil, nil) si no existe.
func (s *EventService) GetByID(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	return s.col.getByID(ctx, id)
}

// List lista los eventos visibles para el llamador.
func (s *EventService) List(ctx context.Context, callerID, role string) ([]*entity.CalendarEvent, error) {
	return s.col.list(ctx, s.scopes.Resolve(ctx, callerID, role))
}

// Update mezcla campos parciales; el tipo, si cambia, se valida contra el enum.
func (s *EventService) Update(ctx context.Context, callerID, role, id string, fields map[string]any) error {
	if raw, ok := fields["type"]; ok {
		t, isStr := raw.(string)
		if !isStr || !entity.ValidEventType(t) {
			return domain.ErrInvalidInput
		}
	}
	return s.col.update(ctx, s.scopes.Resolve(ctx, callerID, role), id, fields)
}

// Remove elimina el evento.
func (s *EventService) Remove(ctx context.Context, callerID, role, id string) error {
	return s.col.remove(ctx, s.scopes.Resolve(ctx, callerID, role), id)
}
