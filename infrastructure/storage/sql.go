package storage

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const kvTable = "kv_store"

// sqlStore implementa o KeyValueStore sobre uma tabela kv_store(key, value)
type sqlStore struct {
	db          *sql.DB
	placeholder squirrel.PlaceholderFormat
	upsert      string
}

func newSQLStore(ctx context.Context, db *sql.DB, placeholder squirrel.PlaceholderFormat, upsert string) (*sqlStore, error) {
	s := &sqlStore{
		db:          db,
		placeholder: placeholder,
		upsert:      upsert,
	}

	createSQL := `CREATE TABLE IF NOT EXISTS ` + kvTable + ` (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return nil, errors.Wrap(err, "erro ao criar tabela kv_store")
	}

	return s, nil
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return "", false, errors.Wrap(err, "erro ao construir a query")
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "erro ao ler a chave %s", key)
	}

	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(s.upsert).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar a chave %s", key)
	}

	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao remover a chave %s", key)
	}

	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
