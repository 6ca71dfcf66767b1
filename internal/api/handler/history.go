package handler

import (
	"net/http"

	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
)

type SelectMonthRequest struct {
	Month string `json:"month"`
}

func GetHistory(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := gate.History()
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}

func ToggleHistory(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showHistory, err := gate.ToggleHistory()
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"showHistory": showHistory})
	}
}

// SelectMonth troca o período exibido e devolve o painel já atualizado
func SelectMonth(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := gate.SelectMonth(req.Month); err != nil {
			handleError(w, r, err)
			return
		}

		GetDashboard(gate)(w, r)
	}
}

func BackToToday(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := gate.BackToToday(); err != nil {
			handleError(w, r, err)
			return
		}

		GetDashboard(gate)(w, r)
	}
}
