package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/financas-pro-api/internal/api/handler/router"
	"github.com/vfg2006/financas-pro-api/internal/usecases/authenticating"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Authentication monta as rotas do portão de sessão. As duas rotas de login
// dividem o mesmo limitador de tentativas.
func Authentication(
	gate *session.Session,
	authenticator authenticating.Authenticator,
	tokens TokenIssuer,
	rateInterval time.Duration,
	rateBurst int,
) []router.Route {
	limit := middleware.RateLimit(rateInterval, rateBurst)

	return []router.Route{
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: GetSession(gate),
		},
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(gate, authenticator, tokens),
			Middlewares: []func(http.Handler) http.Handler{limit},
		},
		{
			Path:        "/v1/login/google",
			Method:      http.MethodPost,
			Handler:     LoginGoogle(gate, authenticator, tokens),
			Middlewares: []func(http.Handler) http.Handler{limit},
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(gate),
		},
	}
}

func Sales(gate *session.Session) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(gate),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(gate),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(gate),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(gate),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(gate),
		},
	}
}

func History(gate *session.Session) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: GetHistory(gate),
		},
		{
			Path:    "/v1/history/toggle",
			Method:  http.MethodPost,
			Handler: ToggleHistory(gate),
		},
		{
			Path:    "/v1/view/month",
			Method:  http.MethodPut,
			Handler: SelectMonth(gate),
		},
		{
			Path:    "/v1/view/today",
			Method:  http.MethodPost,
			Handler: BackToToday(gate),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
