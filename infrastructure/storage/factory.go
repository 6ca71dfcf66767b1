package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/financas-pro-api/infrastructure/database/postgres"
	"github.com/vfg2006/financas-pro-api/internal/config"
)

// Open cria o armazenamento conforme STORAGE_DRIVER
func Open(ctx context.Context, cfg *config.Config) (KeyValueStore, error) {
	logrus.WithField("driver", cfg.Storage.Driver).Info("Abrindo armazenamento")

	switch cfg.Storage.Driver {
	case DriverMemory:
		logrus.Warn("Armazenamento em memória: os dados serão perdidos ao encerrar o processo")
		return NewMemoryStore(), nil

	case DriverSQLite:
		return NewSQLiteStore(ctx, cfg.Storage.SQLitePath)

	case DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
		}
		if err := conn.Ping(ctx); err != nil {
			conn.Close()
			return nil, errors.Wrap(err, "erro ao testar conexão com PostgreSQL")
		}
		store, err := NewPostgresStore(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		return store, nil

	case DriverRedis:
		return NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	default:
		return nil, unknownDriver(cfg.Storage.Driver)
	}
}
