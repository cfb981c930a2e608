package repository

import (
	"context"
	"encoding/json"
	"time"
)

// Nombres de las colecciones lógicas del almacén de documentos.
const (
	CollectionGarments  = "garments"
	CollectionClients   = "clients"
	CollectionOrders    = "orders"
	CollectionStock     = "stock"
	CollectionEvents    = "events"
	CollectionMaterials = "materials"
)

// Document registro crudo de una colección: el entity serializado en Data más
// las columnas indexadas que el almacén necesita para filtrar por dueño.
type Document struct {
	ID        string
	OwnerID   string
	CreatedAt time.Time
	Data      json.RawMessage
}

// DocumentStore define el puerto del almacén de documentos (DIP): un registro
// plano por entidad, consulta por igualdad sobre ownerId, sin transacciones
// entre colecciones. Get devuelve (nil, nil) cuando el documento no existe.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc *Document) error
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Merge mezcla fields sobre el documento existente (last-write-wins,
	// sin token de concurrencia). Devuelve domain.ErrNotFound si no existe.
	Merge(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	ListAll(ctx context.Context, collection string) ([]*Document, error)
	ListByOwner(ctx context.Context, collection, ownerID string) ([]*Document, error)
}
