package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/financas-pro-api/infrastructure/storage"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

// SalesRepository persiste a conta ativa e a coleção de vendas de cada conta.
// Falhas de leitura nunca sobem para o chamador: viram coleção vazia com diagnóstico no log.
type SalesRepository interface {
	LoadAccount(ctx context.Context) (string, bool)
	SaveAccount(ctx context.Context, account string) error
	ClearAccount(ctx context.Context) error
	LoadRecords(ctx context.Context, account string) []*domain.Sale
	SaveRecords(ctx context.Context, account string, sales []*domain.Sale) error
}

type salesRepository struct {
	store   storage.KeyValueStore
	prefix  string
	userKey string
}

func NewSalesRepository(store storage.KeyValueStore, cfg config.Storage) SalesRepository {
	return &salesRepository{
		store:   store,
		prefix:  cfg.Prefix,
		userKey: cfg.UserKey,
	}
}

func (r *salesRepository) recordsKey(account string) string {
	return r.prefix + account
}

func (r *salesRepository) LoadAccount(ctx context.Context) (string, bool) {
	account, ok, err := r.store.Get(ctx, r.userKey)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("repository: erro ao ler a conta ativa")
		return "", false
	}
	if !ok || account == "" {
		return "", false
	}
	return account, true
}

func (r *salesRepository) SaveAccount(ctx context.Context, account string) error {
	if err := r.store.Set(ctx, r.userKey, account); err != nil {
		return errors.Wrap(err, "erro ao salvar a conta ativa")
	}
	return nil
}

func (r *salesRepository) ClearAccount(ctx context.Context) error {
	if err := r.store.Remove(ctx, r.userKey); err != nil {
		return errors.Wrap(err, "erro ao remover a conta ativa")
	}
	return nil
}

func (r *salesRepository) LoadRecords(ctx context.Context, account string) []*domain.Sale {
	logger := log.ForContext(ctx).WithField("account", account)

	raw, ok, err := r.store.Get(ctx, r.recordsKey(account))
	if err != nil {
		logger.WithError(err).Error("repository: erro ao carregar vendas, iniciando vazio")
		return []*domain.Sale{}
	}
	if !ok {
		logger.Debug("repository: conta nova, nenhuma venda salva")
		return []*domain.Sale{}
	}

	var sales []*domain.Sale
	if err := json.Unmarshal([]byte(raw), &sales); err != nil {
		logger.WithError(err).Warn("repository: dados de vendas corrompidos, iniciando vazio")
		return []*domain.Sale{}
	}

	// descarta entradas nulas de um array como [null] e valores fora do limite
	valid := make([]*domain.Sale, 0, len(sales))
	for _, s := range sales {
		if s == nil {
			continue
		}
		if s.Value > domain.MaxSaleValue || s.Value < -domain.MaxSaleValue {
			logger.WithField("sale_id", s.ID).Warn("repository: venda com valor fora do limite descartada")
			continue
		}
		valid = append(valid, s)
	}

	return valid
}

func (r *salesRepository) SaveRecords(ctx context.Context, account string, sales []*domain.Sale) error {
	if sales == nil {
		sales = []*domain.Sale{}
	}

	data, err := json.Marshal(sales)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar vendas")
	}

	if err := r.store.Set(ctx, r.recordsKey(account), string(data)); err != nil {
		return errors.Wrapf(err, "erro ao salvar vendas da conta %s", account)
	}

	return nil
}
