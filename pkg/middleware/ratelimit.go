package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit limita as tentativas de login de todo o processo a um balde de burst
// fichas, recarregado a cada interval
func RateLimit(interval time.Duration, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Every(interval), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
				}).Warn("Limite de tentativas excedido")
				apiErrors.WriteError(w, apiErrors.ErrTooManyAttempts, "Muitas tentativas, aguarde um instante", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
