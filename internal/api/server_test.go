package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	dashboardmocks "github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard/mocks"
)

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDashboard := dashboardmocks.NewMockDashboardService(ctrl)

	cfg := &config.Config{
		Server:     config.Server{Host: "localhost", Port: "7777"},
		Cors:       config.Cors{AllowedOrigins: []string{"*"}},
		Workspaces: []domain.Workspace{{Name: "Acme", Token: "tok-acme"}},
	}

	srv, err := New(cfg, mockDashboard, nil)
	require.NoError(t, err)

	t.Run("healthcheck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
	})

	t.Run("rota do dashboard com CORS", func(t *testing.T) {
		mockDashboard.EXPECT().
			GetAllWorkspacesBasicData(gomock.Any(), cfg.Workspaces).
			Return(&domain.BasicDataResponse{Data: []domain.WorkspaceBasicData{}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/dashboard/basic", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	})

	t.Run("cron sem serviço de snapshot", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/dashboard-snapshot/run", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
