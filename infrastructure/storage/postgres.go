package storage

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/financas-pro-api/infrastructure/database/postgres"
)

const postgresUpsert = "ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()"

// NewPostgresStore usa a conexão PostgreSQL já aberta
func NewPostgresStore(ctx context.Context, conn *postgres.Connection) (KeyValueStore, error) {
	return newSQLStore(ctx, conn.DB, squirrel.Dollar, postgresUpsert)
}
