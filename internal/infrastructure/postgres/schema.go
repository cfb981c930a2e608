package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea las tablas si no existen: documents (una fila por entidad de
// cualquier colección, con owner_id indexado para el filtro por dueño) y
// users (perfil tipado, auth necesita búsqueda por email).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection  TEXT        NOT NULL,
			id          TEXT        NOT NULL,
			owner_id    TEXT        NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL,
			data        JSONB       NOT NULL,
			PRIMARY KEY (collection, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_owner
			ON documents (collection, owner_id)`,
		`CREATE TABLE IF NOT EXISTS users (
			uid           TEXT        PRIMARY KEY,
			email         TEXT        NOT NULL UNIQUE,
			display_name  TEXT        NOT NULL DEFAULT '',
			role          TEXT        NOT NULL DEFAULT 'user',
			password_hash TEXT        NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}
