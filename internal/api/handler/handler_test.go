package handler

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/financas-pro-api/infrastructure/repository"
	repomocks "github.com/vfg2006/financas-pro-api/infrastructure/repository/mocks"
	"github.com/vfg2006/financas-pro-api/infrastructure/storage"
	"github.com/vfg2006/financas-pro-api/internal/config"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/usecases/authenticating"
	"github.com/vfg2006/financas-pro-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/financas-pro-api/internal/usecases/session"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var reference = time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC)

func newGate() *session.Session {
	repo := repository.NewSalesRepository(storage.NewMemoryStore(), config.Storage{
		Prefix:  "financas_pro_sales_",
		UserKey: "financas_pro_user",
	})
	return session.New(repo, utils.FixedClock(reference))
}

type stubIssuer struct{}

func (stubIssuer) Issue(account, provider string) (string, error) {
	return "token-" + provider + "-" + account, nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(m *mocks.MockAuthenticator)
		expectedCode int
		expectedErr  string
		expectLogged bool
	}{
		{
			name: "credenciais válidas ativam a conta",
			body: `{"email":"a@x.com","password":"1"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), domain.Credentials{
					Provider: domain.ProviderEmail,
					Email:    "a@x.com",
					Password: "1",
				}).Return("a@x.com", nil)
			},
			expectedCode: http.StatusOK,
			expectLogged: true,
		},
		{
			name:         "corpo inválido",
			body:         `{"email":`,
			setup:        func(m *mocks.MockAuthenticator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidRequest,
		},
		{
			name: "credenciais recusadas",
			body: `{"email":"sem-arroba","password":"1"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("", authenticating.NewAuthError(
					authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email inválido"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidCredentials,
		},
		{
			name: "requisição cancelada durante a espera",
			body: `{"email":"a@x.com","password":"1"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("", context.Canceled)
			},
			expectedCode: http.StatusRequestTimeout,
			expectedErr:  apiErrors.ErrServiceCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authenticator := mocks.NewMockAuthenticator(ctrl)
			tt.setup(authenticator)

			gate := newGate()
			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(gate, authenticator, stubIssuer{})(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rec).Code)
			} else {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "token-email-a@x.com", resp.Token)
			}

			_, ok := gate.Current()
			assert.Equal(t, tt.expectLogged, ok)
		})
	}
}

func TestLogin_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := mocks.NewMockAuthenticator(ctrl)
	repo := repomocks.NewMockSalesRepository(ctrl)

	authenticator.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("a@x.com", nil)
	repo.EXPECT().SaveAccount(gomock.Any(), "a@x.com").Return(assert.AnError)

	gate := session.New(repo, utils.FixedClock(reference))
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"a@x.com","password":"1"}`))
	rec := httptest.NewRecorder()

	Login(gate, authenticator, stubIssuer{})(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrStorageOperation, decodeError(t, rec).Code)
}

func TestLoginGoogle(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := mocks.NewMockAuthenticator(ctrl)
	authenticator.EXPECT().
		Authenticate(gomock.Any(), domain.Credentials{Provider: domain.ProviderGoogle}).
		Return("usuario.google@gmail.com", nil)

	gate := newGate()
	rec := httptest.NewRecorder()
	LoginGoogle(gate, authenticator, stubIssuer{})(rec, httptest.NewRequest(http.MethodPost, "/v1/login/google", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	account, _ := gate.Current()
	assert.Equal(t, "usuario.google@gmail.com", account)
}

func TestLogout_EmptyBodyAsksForConfirmation(t *testing.T) {
	gate := newGate()
	require.NoError(t, gate.Login(context.Background(), "a@x.com"))

	rec := httptest.NewRecorder()
	Logout(gate)(rec, httptest.NewRequest(http.MethodPost, "/v1/logout", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrConfirmationRequired, decodeError(t, rec).Code)
}

func TestCreateSale_InvalidInputLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "produto vazio", body: `{"productName":"  ","value":"10"}`, code: http.StatusUnprocessableEntity},
		{name: "valor vazio", body: `{"productName":"Bolo","value":""}`, code: http.StatusUnprocessableEntity},
		{name: "valor zero", body: `{"productName":"Bolo","value":"0"}`, code: http.StatusUnprocessableEntity},
		{name: "valor negativo", body: `{"productName":"Bolo","value":"-5"}`, code: http.StatusUnprocessableEntity},
		{name: "json inválido", body: `[`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := newGate()
			require.NoError(t, gate.Login(context.Background(), "a@x.com"))

			rec := httptest.NewRecorder()
			CreateSale(gate)(rec, httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, rec.Code)
			assert.Empty(t, gate.Records())
		})
	}
}

func TestViews_RequireActiveAccount(t *testing.T) {
	gate := newGate()

	handlers := map[string]http.HandlerFunc{
		"dashboard": GetDashboard(gate),
		"summary":   GetSummary(gate),
		"sales":     ListSales(gate),
		"history":   GetHistory(gate),
		"toggle":    ToggleHistory(gate),
		"today":     BackToToday(gate),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, apiErrors.ErrNotAuthenticated, decodeError(t, rec).Code)
		})
	}
}

func TestWriteJSON_EncodingFailureIsInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"total": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}
