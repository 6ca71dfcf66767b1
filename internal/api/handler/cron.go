package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/financas-pro-api/internal/scheduler"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/log"
	"github.com/vfg2006/financas-pro-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyClosing = "daily-closing"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DailyClosingService *scheduler.DailyClosingService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		logger := log.ForContext(r.Context()).WithField("type", cronType)
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("account", claims.Account)
		}
		logger.Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeDailyClosing:
			if services.DailyClosingService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento do dia não disponível", nil)
				return
			}

			closing, err := services.DailyClosingService.RunNow(r.Context())
			if err != nil {
				handleError(w, r, err)
				return
			}

			writeJSON(w, http.StatusOK, map[string]any{
				"message": "Cron job executada com sucesso",
				"type":    cronType,
				"result":  closing,
			})

		default:
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido. Valores aceitos: daily-closing", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DailyClosingService != nil {
			status[CronJobTypeDailyClosing] = services.DailyClosingService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
