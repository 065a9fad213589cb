package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	authmocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/authenticating/mocks"
	exploringmocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring/mocks"
	"go.uber.org/mock/gomock"
)

type idleWarmup struct{}

func (idleWarmup) TriggerManualSync()        {}
func (idleWarmup) ClearCache()               {}
func (idleWarmup) GetStatus() map[string]any { return map[string]any{} }

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authmocks.NewMockAuthenticator(ctrl)
	explorer := exploringmocks.NewMockExplorer(ctrl)

	auth.EXPECT().ValidateToken("viewer").Return(&domain.Claims{ClientID: "v", ClientRoleID: domain.RoleViewer}, nil).AnyTimes()
	auth.EXPECT().ValidateToken("admin").Return(&domain.Claims{ClientID: "a", ClientRoleID: domain.RoleAdmin}, nil).AnyTimes()
	explorer.EXPECT().FilterDomains(gomock.Any()).Return(&domain.FilterDomains{}, nil).AnyTimes()

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}
	h := NewHandler(cfg, Services{
		Explorer:      explorer,
		Authenticator: auth,
		Warmup:        idleWarmup{},
		Clock:         clockwork.NewFakeClock(),
	})

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "Healthcheck é público", method: http.MethodGet, path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Métricas são públicas", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Rota protegida sem token", method: http.MethodGet, path: "/v1/filters", expectedStatus: http.StatusUnauthorized},
		{name: "Viewer consulta filtros", method: http.MethodGet, path: "/v1/filters", token: "viewer", expectedStatus: http.StatusOK},
		{name: "Viewer não acessa o pacote de evidências", method: http.MethodGet, path: "/v1/evidence-pack", token: "viewer", expectedStatus: http.StatusForbidden},
		{name: "Viewer não aciona cron", method: http.MethodPost, path: "/v1/cron/warmup/run", token: "viewer", expectedStatus: http.StatusForbidden},
		{name: "Admin aciona cron", method: http.MethodPost, path: "/v1/cron/warmup/run", token: "admin", expectedStatus: http.StatusAccepted},
		{name: "Admin consulta status do cron", method: http.MethodGet, path: "/v1/cron/status", token: "admin", expectedStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/nada", token: "admin", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
