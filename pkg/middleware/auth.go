package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]bool{
	"/healthcheck":     true,
	"/v1/session":      true,
	"/v1/login":        true,
	"/v1/login/google": true,
}

// TokenValidator valida o token de sessão enviado no cabeçalho Authorization
type TokenValidator interface {
	Validate(tokenString string) (*domain.Claims, error)
}

// ActiveAccount informa a conta ativa no portão de sessão
type ActiveAccount interface {
	Current() (string, bool)
}

// AuthMiddleware só deixa passar tokens emitidos para a conta que está ativa agora
func AuthMiddleware(tokens TokenValidator, gate ActiveAccount) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			account, ok := gate.Current()
			if !ok || account != claims.Account {
				log.ForContext(r.Context()).WithField("account", claims.Account).Warn("Token de uma conta que não está ativa")
				apiErrors.WriteError(w, apiErrors.ErrExpiredSession, "Sessão encerrada, entre novamente", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
