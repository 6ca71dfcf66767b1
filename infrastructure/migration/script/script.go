// Script de migração das coleções de vendas entre armazenamentos.
//
//	go run ./infrastructure/migration/script --from sqlite --to postgres --accounts a@x.com,b@x.com
//
// As conexões dos dois lados vêm das mesmas variáveis de ambiente da API.
package main

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/financas-pro-api/infrastructure/repository"
	"github.com/vfg2006/financas-pro-api/infrastructure/storage"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/pkg/log"
)

type migrationResult struct {
	Accounts int
	Sales    int
	Skipped  []string
}

func main() {
	from := pflag.String("from", storage.DriverSQLite, "driver de origem (memory, sqlite, postgres, redis)")
	to := pflag.String("to", storage.DriverPostgres, "driver de destino")
	accounts := pflag.StringSlice("accounts", nil, "contas a migrar, separadas por vírgula")
	withActive := pflag.Bool("with-active", true, "migra também a conta ativa")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if *from == *to {
		logrus.Fatalf("Origem e destino são o mesmo driver: %s", *from)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	src, closeSrc := openRepository(ctx, cfg, *from)
	defer closeSrc()
	dst, closeDst := openRepository(ctx, cfg, *to)
	defer closeDst()

	startTime := time.Now()
	result, err := migrate(ctx, src, dst, *accounts, *withActive)
	if err != nil {
		logrus.WithError(err).Fatal("Migração interrompida")
	}

	logrus.WithFields(logrus.Fields{
		"accounts": result.Accounts,
		"sales":    result.Sales,
		"skipped":  strings.Join(result.Skipped, ","),
		"duration": time.Since(startTime).String(),
	}).Info("Migração concluída")
}

func openRepository(ctx context.Context, cfg *config.Config, driver string) (repository.SalesRepository, func()) {
	storeCfg := *cfg
	storeCfg.Storage.Driver = driver

	store, err := storage.Open(ctx, &storeCfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", driver).Fatal("Erro ao abrir armazenamento")
	}

	return repository.NewSalesRepository(store, cfg.Storage), func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).WithField("driver", driver).Warn("Erro ao fechar armazenamento")
		}
	}
}

// migrate copia a coleção de cada conta. Coleções vazias ou ilegíveis na origem
// não sobrescrevem o destino.
func migrate(
	ctx context.Context,
	src, dst repository.SalesRepository,
	accounts []string,
	withActive bool,
) (migrationResult, error) {
	var result migrationResult

	active, hasActive := src.LoadAccount(ctx)
	if withActive && hasActive {
		accounts = append(accounts, active)
	}

	seen := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		account = strings.TrimSpace(account)
		if account == "" || seen[account] {
			continue
		}
		seen[account] = true

		sales := src.LoadRecords(ctx, account)
		if len(sales) == 0 {
			logrus.WithField("account", account).Warn("Nenhuma venda na origem, conta ignorada")
			result.Skipped = append(result.Skipped, account)
			continue
		}

		if err := dst.SaveRecords(ctx, account, sales); err != nil {
			return result, errors.Wrapf(err, "erro ao gravar vendas de %s", account)
		}

		logrus.WithFields(logrus.Fields{
			"account":     account,
			"sales_count": len(sales),
		}).Info("Conta migrada")

		result.Accounts++
		result.Sales += len(sales)
	}

	if withActive && hasActive {
		if err := dst.SaveAccount(ctx, active); err != nil {
			return result, errors.Wrap(err, "erro ao gravar a conta ativa")
		}
	}

	return result, nil
}
