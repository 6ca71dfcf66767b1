package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/usecases/authenticating"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Account string `json:"account"`
}

type LogoutRequest struct {
	Confirm bool `json:"confirm"`
}

// TokenIssuer emite o token de sessão da conta recém ativada
type TokenIssuer interface {
	Issue(account, provider string) (string, error)
}

func GetSession(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gate.State())
	}
}

func Login(gate *session.Session, authenticator authenticating.Authenticator, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		login(w, r, gate, authenticator, tokens, domain.Credentials{
			Provider: domain.ProviderEmail,
			Email:    req.Email,
			Password: req.Password,
		})
	}
}

func LoginGoogle(gate *session.Session, authenticator authenticating.Authenticator, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login(w, r, gate, authenticator, tokens, domain.Credentials{Provider: domain.ProviderGoogle})
	}
}

func login(
	w http.ResponseWriter,
	r *http.Request,
	gate *session.Session,
	authenticator authenticating.Authenticator,
	tokens TokenIssuer,
	credentials domain.Credentials,
) {
	account, err := authenticator.Authenticate(r.Context(), credentials)
	if err != nil {
		logger := log.ForContext(r.Context()).WithError(err).WithField("provider", credentials.Provider)
		if authenticating.IsCredentialsError(err) {
			logger.Warn("Credenciais recusadas")
		} else {
			logger.Error("Falha no login")
		}
		handleError(w, r, err)
		return
	}

	if err := gate.Login(r.Context(), account); err != nil {
		handleError(w, r, err)
		return
	}

	token, err := tokens.Issue(account, credentials.Provider)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao emitir token")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao emitir token", nil)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Account: account})
}

// Logout só encerra a sessão com confirm=true; sem ela responde 409 com a pergunta
func Logout(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := gate.Logout(r.Context(), req.Confirm); err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, gate.State())
	}
}
