package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/access"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
)

// collection operaciones CRUD compartidas por todos los servicios de entidad:
// estampado de dueño y fecha al crear, merge parcial sin re-estampar, listado
// vía ListScoped y chequeo de dueño en update/remove. Cada servicio tipado
// agrega encima su validación y desnormalización propias.
type collection[T any] struct {
	store repository.DocumentStore
	name  string
}

func newCollection[T any](store repository.DocumentStore, name string) collection[T] {
	return collection[T]{store: store, name: name}
}

// save persiste una entidad nueva. Falla con ErrUnauthenticated si no hay
// llamador; build recibe el id generado y el instante de creación para que la
// entidad lleve los sellos correctos antes de serializarse.
func (c collection[T]) save(ctx context.Context, ownerID string, build func(id string, now time.Time) T) (*T, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	id := uuid.New().String()
	now := time.Now()
	v := build(id, now)
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", c.name, err)
	}
	doc := &repository.Document{ID: id, OwnerID: ownerID, CreatedAt: now, Data: data}
	if err := c.store.Insert(ctx, c.name, doc); err != nil {
		return nil, err
	}
	return &v, nil
}

// getByID devuelve la entidad o (nil, nil) si no existe; ausencia no es fallo.
func (c collection[T]) getByID(ctx context.Context, id string) (*T, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return decodeDocument[T](c.name, doc)
}

// list lee la colección con el alcance dado (la única regla de autorización).
func (c collection[T]) list(ctx context.Context, sc access.Scope) ([]*T, error) {
	docs, err := ListScoped(ctx, c.store, c.name, sc)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		v, err := decodeDocument[T](c.name, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// update mezcla fields sobre el registro existente. Nunca re-estampa id,
// dueño ni fecha de creación, y exige que el alcance pueda tocar el registro.
func (c collection[T]) update(ctx context.Context, sc access.Scope, id string, fields map[string]any) error {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if !sc.CanAccess(doc.OwnerID) {
		return domain.ErrForbidden
	}
	delete(fields, "id")
	delete(fields, "ownerId")
	delete(fields, "createdAt")
	if len(fields) == 0 {
		return nil
	}
	return c.store.Merge(ctx, c.name, id, fields)
}

// remove borra el registro si el alcance lo permite. Borrar algo que ya no
// existe no es error.
func (c collection[T]) remove(ctx context.Context, sc access.Scope, id string) error {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	if !sc.CanAccess(doc.OwnerID) {
		return domain.ErrForbidden
	}
	return c.store.Delete(ctx, c.name, id)
}

func decodeDocument[T any](collection string, doc *repository.Document) (*T, error) {
	var v T
	if err := json.Unmarshal(doc.Data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", collection, doc.ID, err)
	}
	return &v, nil
}
