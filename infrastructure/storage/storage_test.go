package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/financas-pro-api/infrastructure/database/postgres"
	"github.com/vfg2006/financas-pro-api/internal/config"
)

// exerciseStore valida o contrato comum a todos os drivers
func exerciseStore(t *testing.T, store KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "inexistente")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "financas_pro_user", "a@x.com"))
	v, ok, err := store.Get(ctx, "financas_pro_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", v)

	require.NoError(t, store.Set(ctx, "financas_pro_user", "b@y.com"))
	v, _, err = store.Get(ctx, "financas_pro_user")
	require.NoError(t, err)
	assert.Equal(t, "b@y.com", v)

	require.NoError(t, store.Set(ctx, "vazio", ""))
	v, ok, err = store.Get(ctx, "vazio")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)

	require.NoError(t, store.Remove(ctx, "financas_pro_user"))
	_, ok, err = store.Get(ctx, "financas_pro_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, "nunca-existiu"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "financas.db")

	store, err := NewSQLiteStore(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "financas.db")

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "financas_pro_sales_a@x.com", `[{"id":"1"}]`))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "financas_pro_sales_a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR não definido")
	}

	store, err := NewRedisStore(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN não definido")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, config.Database{DSN: dsn})
	require.NoError(t, err)

	store, err := NewPostgresStore(ctx, conn)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, &config.Config{Storage: config.Storage{Driver: DriverMemory}})
	require.NoError(t, err)
	assert.NotNil(t, store)

	store, err = Open(ctx, &config.Config{Storage: config.Storage{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	}})
	require.NoError(t, err)
	defer store.Close()

	_, err = Open(ctx, &config.Config{Storage: config.Storage{Driver: "cassandra"}})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
