package main

import (
	"context"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/financas-pro-api/infrastructure/repository"
	"github.com/vfg2006/financas-pro-api/infrastructure/storage"
	"github.com/vfg2006/financas-pro-api/internal/api"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/internal/scheduler"
	"github.com/vfg2006/financas-pro-api/internal/usecases/authenticating"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/log"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Storage.Driver).Fatal("Erro ao abrir o armazenamento")
	}
	defer store.Close()

	logrus.WithField("driver", cfg.Storage.Driver).Info("Armazenamento aberto com sucesso")

	clock := utils.NewClock(cfg.Location())

	salesRepo := repository.NewSalesRepository(store, cfg.Storage)

	// O portão de sessão reabre a conta que estava ativa antes do reinício
	gate := session.New(salesRepo, clock)
	gate.Restore(ctx)

	authenticator := authenticating.NewSimulatedAuthenticator(cfg.Auth)
	tokenManager := authenticating.NewTokenManager(cfg.SecretKey, cfg.Auth.TokenTTL, clock)

	dailyClosingService := scheduler.NewDailyClosingService(gate, cfg, clock)
	if err := dailyClosingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do fechamento do dia")
	} else {
		logrus.Info("Agendador do fechamento do dia iniciado com sucesso")
	}

	server, err := api.New(cfg, gate, authenticator, tokenManager, dailyClosingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
