// Package scheduler contém as tarefas agendadas da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

//go:generate mockgen -source=daily_closing.go -destination=mocks/daily_closing.go -package=mocks

var ErrJobRunning = errors.New("fechamento do dia já está em execução")

// DailyCloser calcula o fechamento do dia da conta ativa
type DailyCloser interface {
	DailyClosing(ctx context.Context) (*domain.DailyClosing, error)
}

type DailyClosingService struct {
	scheduler *gocron.Scheduler
	closer    DailyCloser
	config    config.DailyClosing
	now       utils.Clock

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastClosing     *domain.DailyClosing
}

func NewDailyClosingService(closer DailyCloser, cfg *config.Config, clock utils.Clock) *DailyClosingService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.DailyClosing.CronSchedule,
		"enabled":       cfg.DailyClosing.Enabled,
	}).Info("Configuração do fechamento do dia carregada")

	return &DailyClosingService{
		scheduler: gocron.NewScheduler(cfg.Location()),
		closer:    closer,
		config:    cfg.DailyClosing,
		now:       clock,
	}
}

func (s *DailyClosingService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Fechamento do dia desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, session.ErrNotAuthenticated) {
			logrus.WithError(err).Error("Erro no fechamento do dia")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento do dia: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do fechamento do dia")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o fechamento imediatamente. Sem conta ativa, não há o que fechar.
func (s *DailyClosingService) RunNow(ctx context.Context) (*domain.DailyClosing, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrJobRunning
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.mu.Unlock()

	closing, err := s.closer.DailyClosing(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastCompletedAt = s.now()

	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			logrus.Info("Fechamento do dia ignorado: nenhuma conta ativa")
		}
		return nil, err
	}

	s.lastClosing = closing
	logrus.WithFields(logrus.Fields{
		"account":       closing.Account,
		"date":          closing.Date,
		"daily_total":   closing.DailyTotal,
		"daily_count":   closing.DailyCount,
		"month":         closing.MonthKey,
		"monthly_total": closing.MonthlyTotal,
	}).Infof("Fechamento do dia: %s em %d vendas", utils.FormatCurrency(closing.DailyTotal), closing.DailyCount)

	return closing, nil
}

// GetStatus retorna o status atual do agendador
func (s *DailyClosingService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_closing":      s.lastClosing,
	}
}
