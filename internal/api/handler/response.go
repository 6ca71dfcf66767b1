package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/financas-pro-api/internal/scheduler"
	"github.com/vfg2006/financas-pro-api/internal/usecases/authenticating"
	"github.com/vfg2006/financas-pro-api/internal/usecases/selling"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa antes de escrever o status, assim uma falha vira 500 com corpo
func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.L.WithError(err).Warn("Erro ao enviar resposta")
	}
}

// handleError traduz os erros dos casos de uso para a resposta padronizada
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		authErr         *authenticating.AuthError
		confirmationErr *session.ConfirmationError
		validationErr   *selling.ValidationError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &confirmationErr):
		apiErrors.WriteError(w, apiErrors.ErrConfirmationRequired, "Confirme a ação para continuar", map[string]string{
			"prompt": confirmationErr.Prompt,
		})

	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), nil)

	case errors.Is(err, session.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)

	case errors.Is(err, session.ErrNotAuthenticated):
		apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Nenhuma conta ativa", nil)

	case errors.Is(err, session.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, session.ErrMissingAccount):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, scheduler.ErrJobRunning):
		apiErrors.WriteError(w, apiErrors.ErrJobRunning, err.Error(), nil)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrServiceCancelled, "Requisição cancelada", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao acessar o armazenamento", nil)
	}
}
