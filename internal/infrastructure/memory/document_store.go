// Package memory implementa el puerto DocumentStore en memoria. Se usa en
// tests y como respaldo para correr la app sin PostgreSQL.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore almacén de documentos en memoria, seguro para concurrencia.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]*repository.Document
}

// NewDocumentStore construye un almacén vacío.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string]map[string]*repository.Document)}
}

func (s *DocumentStore) coll(name string) map[string]*repository.Document {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]*repository.Document)
		s.collections[name] = c
	}
	return c
}

// Insert persiste un documento nuevo.
func (s *DocumentStore) Insert(_ context.Context, collection string, doc *repository.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.coll(collection)
	if _, exists := c[doc.ID]; exists {
		return domain.ErrDuplicate
	}
	copied := *doc
	c[doc.ID] = &copied
	return nil
}

// Get devuelve el documento o (nil, nil) si no existe.
func (s *DocumentStore) Get(_ context.Context, collection, id string) (*repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.coll(collection)[id]
	if !ok {
		return nil, nil
	}
	copied := *doc
	return &copied, nil
}

// Merge mezcla fields sobre el JSON existente (last-write-wins).
func (s *DocumentStore) Merge(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.coll(collection)[id]
	if !ok {
		return domain.ErrNotFound
	}
	var current map[string]any
	if err := json.Unmarshal(doc.Data, &current); err != nil {
		return fmt.Errorf("unmarshal documento %s/%s: %w", collection, id, err)
	}
	for k, v := range fields {
		current[k] = v
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal documento %s/%s: %w", collection, id, err)
	}
	doc.Data = merged
	return nil
}

// Delete elimina el documento; borrar algo inexistente no es error.
func (s *DocumentStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.coll(collection), id)
	return nil
}

// ListAll lista todos los documentos de la colección, más recientes primero.
func (s *DocumentStore) ListAll(_ context.Context, collection string) ([]*repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(collection, func(*repository.Document) bool { return true }), nil
}

// ListByOwner lista solo los documentos del dueño indicado.
func (s *DocumentStore) ListByOwner(_ context.Context, collection, ownerID string) ([]*repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(collection, func(d *repository.Document) bool { return d.OwnerID == ownerID }), nil
}

func (s *DocumentStore) snapshot(collection string, keep func(*repository.Document) bool) []*repository.Document {
	var list []*repository.Document
	for _, doc := range s.coll(collection) {
		if keep(doc) {
			copied := *doc
			list = append(list, &copied)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
