package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
)

func GetDashboard(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := gate.Dashboard()
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dashboard)
	}
}

func GetSummary(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := gate.Summary()
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func ListSales(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := gate.Sales()
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sales)
	}
}

// CreateSale registra uma venda. O valor chega como texto, do jeito que foi digitado.
func CreateSale(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.SaleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := gate.AddSale(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

func DeleteSale(gate *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da venda não informado", nil)
			return
		}

		confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		sale, err := gate.DeleteSale(r.Context(), id, confirm)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}
