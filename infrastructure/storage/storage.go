// Package storage define o armazenamento chave/valor onde as contas e vendas ficam persistidas.
package storage

import (
	"context"
	"errors"
	"fmt"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var ErrUnknownDriver = errors.New("driver de armazenamento desconhecido")

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

// KeyValueStore guarda strings sob chaves string
type KeyValueStore interface {
	// Get devolve o valor e se a chave existe
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

func unknownDriver(driver string) error {
	return fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}
