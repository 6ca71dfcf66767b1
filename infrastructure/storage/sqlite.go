package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const sqliteUpsert = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"

// NewSQLiteStore abre (ou cria) o arquivo SQLite informado
func NewSQLiteStore(ctx context.Context, path string) (KeyValueStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "erro ao criar diretório do banco")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir banco SQLite")
	}

	// Um único escritor evita SQLITE_BUSY entre requisições concorrentes
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão com SQLite")
	}

	store, err := newSQLStore(ctx, db, squirrel.Question, sqliteUpsert)
	if err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}
