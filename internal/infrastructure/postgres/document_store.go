package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/domain/repository"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/retry"
)

// Querier abstrae pool o tx de pgx (lo mínimo que usan los adaptadores).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore adaptador JSONB sobre PostgreSQL del puerto DocumentStore.
// Toda operación remota pasa por el ejecutor de reintentos con el predicado
// especializado de almacenamiento (ShouldRetry).
type DocumentStore struct {
	q    Querier
	opts retry.Options
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{
		q:    q,
		opts: retry.Options{ShouldRetry: ShouldRetry},
	}
}

// Insert persiste un documento nuevo en la colección.
func (s *DocumentStore) Insert(ctx context.Context, collection string, doc *repository.Document) error {
	query := `
		INSERT INTO documents (collection, id, owner_id, created_at, data)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := retry.Do(ctx, "insert "+collection, func(ctx context.Context) (pgconn.CommandTag, error) {
		return s.q.Exec(ctx, query, collection, doc.ID, doc.OwnerID, doc.CreatedAt, doc.Data)
	}, s.opts)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	return nil
}

// Get obtiene un documento por ID. Devuelve (nil, nil) si no existe.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	query := `
		SELECT id, owner_id, created_at, data
		FROM documents WHERE collection = $1 AND id = $2`
	doc, err := retry.Do(ctx, "get "+collection, func(ctx context.Context) (*repository.Document, error) {
		var d repository.Document
		err := s.q.QueryRow(ctx, query, collection, id).Scan(&d.ID, &d.OwnerID, &d.CreatedAt, &d.Data)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}, s.opts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", collection, err)
	}
	return doc, nil
}

// Merge mezcla fields sobre el JSON existente (operador || de JSONB,
// last-write-wins). Devuelve domain.ErrNotFound si el documento no existe.
func (s *DocumentStore) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal patch %s: %w", collection, err)
	}
	query := `
		UPDATE documents SET data = data || $3::jsonb
		WHERE collection = $1 AND id = $2`
	tag, err := retry.Do(ctx, "merge "+collection, func(ctx context.Context) (pgconn.CommandTag, error) {
		return s.q.Exec(ctx, query, collection, id, patch)
	}, s.opts)
	if err != nil {
		return fmt.Errorf("merge %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un documento por ID (borrado duro, sin tombstone).
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	_, err := retry.Do(ctx, "delete "+collection, func(ctx context.Context) (pgconn.CommandTag, error) {
		return s.q.Exec(ctx, query, collection, id)
	}, s.opts)
	if err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	return nil
}

// ListAll lista todos los documentos de la colección, sin filtro.
func (s *DocumentStore) ListAll(ctx context.Context, collection string) ([]*repository.Document, error) {
	query := `
		SELECT id, owner_id, created_at, data
		FROM documents WHERE collection = $1 ORDER BY created_at DESC`
	return s.list(ctx, "list "+collection, query, collection)
}

// ListByOwner lista solo los documentos cuyo owner_id coincide.
func (s *DocumentStore) ListByOwner(ctx context.Context, collection, ownerID string) ([]*repository.Document, error) {
	query := `
		SELECT id, owner_id, created_at, data
		FROM documents WHERE collection = $1 AND owner_id = $2 ORDER BY created_at DESC`
	return s.list(ctx, "list "+collection, query, collection, ownerID)
}

func (s *DocumentStore) list(ctx context.Context, label, query string, args ...any) ([]*repository.Document, error) {
	docs, err := retry.Do(ctx, label, func(ctx context.Context) ([]*repository.Document, error) {
		rows, err := s.q.Query(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		var list []*repository.Document
		for rows.Next() {
			var d repository.Document
			if err := rows.Scan(&d.ID, &d.OwnerID, &d.CreatedAt, &d.Data); err != nil {
				return nil, fmt.Errorf("scan documento: %w", err)
			}
			list = append(list, &d)
		}
		return list, rows.Err()
	}, s.opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return docs, nil
}
