package authenticating

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Authenticator transforma credenciais no identificador da conta.
// Falha com *AuthError quando as credenciais são inválidas.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials domain.Credentials) (string, error)
}

// SimulatedAuthenticator aceita qualquer e-mail e senha não vazios após um atraso fixo.
// Nenhuma senha é verificada ou armazenada.
type SimulatedAuthenticator struct {
	emailDelay    time.Duration
	googleDelay   time.Duration
	googleAccount string
}

func NewSimulatedAuthenticator(cfg config.Auth) *SimulatedAuthenticator {
	return &SimulatedAuthenticator{
		emailDelay:    cfg.EmailDelay,
		googleDelay:   cfg.GoogleDelay,
		googleAccount: cfg.GoogleAccount,
	}
}

func (s *SimulatedAuthenticator) Authenticate(ctx context.Context, credentials domain.Credentials) (string, error) {
	switch credentials.Provider {
	case "", domain.ProviderEmail:
		email := normalizeEmail(credentials.Email)
		if email == "" || credentials.Password == "" {
			return "", missingData("Email e senha são obrigatórios")
		}
		if !strings.Contains(email, "@") {
			return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email inválido")
		}

		if err := wait(ctx, s.emailDelay); err != nil {
			return "", err
		}

		logrus.WithField("account", email).Debug("authenticating: login por email simulado")
		return email, nil

	case domain.ProviderGoogle:
		if err := wait(ctx, s.googleDelay); err != nil {
			return "", err
		}

		logrus.WithField("account", s.googleAccount).Debug("authenticating: login Google simulado")
		return s.googleAccount, nil

	default:
		return "", NewAuthError(ErrUnknownProvider, apiErrors.ErrInvalidRequest, credentials.Provider)
	}
}

// wait simula a latência do provedor; o cancelamento da requisição interrompe a espera
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// normalizeEmail só remove espaços; maiúsculas fazem parte da chave da conta
func normalizeEmail(s string) string {
	return strings.TrimSpace(s)
}
