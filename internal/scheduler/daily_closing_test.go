package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/financas-pro-api/infrastructure/repository"
	"github.com/vfg2006/financas-pro-api/infrastructure/storage"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/scheduler/mocks"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var reference = time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)

func testConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		App: config.App{Timezone: "UTC"},
		DailyClosing: config.DailyClosing{
			CronSchedule: cron,
			Enabled:      enabled,
		},
	}
}

func TestDailyClosingService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	closer := mocks.NewMockDailyCloser(ctrl)

	closing := &domain.DailyClosing{
		Account:      "a@x.com",
		Date:         "2026-10-18",
		DailyTotal:   150.5,
		DailyCount:   2,
		MonthKey:     "2026-10",
		MonthlyTotal: 900,
	}
	closer.EXPECT().DailyClosing(gomock.Any()).Return(closing, nil)

	service := NewDailyClosingService(closer, testConfig(true, "59 23 * * *"), utils.FixedClock(reference))

	got, err := service.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, closing, got)

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, reference, status["last_started_at"])
	assert.Equal(t, reference, status["last_completed_at"])
	assert.Equal(t, closing, status["last_closing"])
}

func TestDailyClosingService_RunNowWithoutAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	closer := mocks.NewMockDailyCloser(ctrl)
	closer.EXPECT().DailyClosing(gomock.Any()).Return(nil, session.ErrNotAuthenticated)

	service := NewDailyClosingService(closer, testConfig(true, "59 23 * * *"), utils.FixedClock(reference))

	_, err := service.RunNow(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	assert.Nil(t, service.GetStatus()["last_closing"])
}

func TestDailyClosingService_RunNowWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	closer := mocks.NewMockDailyCloser(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	closer.EXPECT().DailyClosing(gomock.Any()).DoAndReturn(func(context.Context) (*domain.DailyClosing, error) {
		close(started)
		<-release
		return &domain.DailyClosing{Account: "a@x.com"}, nil
	})

	service := NewDailyClosingService(closer, testConfig(true, "59 23 * * *"), utils.FixedClock(reference))

	done := make(chan error, 1)
	go func() {
		_, err := service.RunNow(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["running"])

	_, err := service.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrJobRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestDailyClosingService_Start(t *testing.T) {
	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDailyClosingService(mocks.NewMockDailyCloser(ctrl), testConfig(false, "59 23 * * *"), utils.FixedClock(reference))

		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("expressão cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDailyClosingService(mocks.NewMockDailyCloser(ctrl), testConfig(true, "todo dia"), utils.FixedClock(reference))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewDailyClosingService(mocks.NewMockDailyCloser(ctrl), testConfig(true, "59 23 * * *"), utils.FixedClock(reference))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}

func TestDailyClosingService_WithSession(t *testing.T) {
	clock := utils.FixedClock(time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC))
	repo := repository.NewSalesRepository(storage.NewMemoryStore(), config.Storage{
		Prefix:  "financas_pro_sales_",
		UserKey: "financas_pro_user",
	})
	gate := session.New(repo, clock)
	ctx := context.Background()

	service := NewDailyClosingService(gate, testConfig(true, "59 23 * * *"), clock)

	_, err := service.RunNow(ctx)
	assert.True(t, errors.Is(err, session.ErrNotAuthenticated))

	require.NoError(t, gate.Login(ctx, "a@x.com"))
	_, err = gate.AddSale(ctx, domain.SaleInput{ProductName: "Bolo", Value: "25,50"})
	require.NoError(t, err)
	_, err = gate.AddSale(ctx, domain.SaleInput{ProductName: "Torta", Value: "10"})
	require.NoError(t, err)

	closing, err := service.RunNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", closing.Account)
	assert.Equal(t, "2026-10-18", closing.Date)
	assert.Equal(t, 35.5, closing.DailyTotal)
	assert.Equal(t, 2, closing.DailyCount)
	assert.Equal(t, 35.5, closing.MonthlyTotal)
}
