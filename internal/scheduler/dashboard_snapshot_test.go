package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	dashboardmocks "github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard/mocks"
)

func newSnapshotService(t *testing.T, enabled bool) (*DashboardSnapshotService, *dashboardmocks.MockDashboardService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDashboard := dashboardmocks.NewMockDashboardService(ctrl)

	cfg := &config.Config{
		Workspaces: []domain.Workspace{{Name: "Acme", Token: "tok-acme"}, {Name: "Globex", Token: "tok-globex"}},
		DashboardSnapshot: config.DashboardSnapshot{
			CronSchedule: "0 */6 * * *",
			Enabled:      enabled,
		},
	}

	return NewDashboardSnapshotService(mockDashboard, cfg), mockDashboard
}

func TestDashboardSnapshotService_RunSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *dashboardmocks.MockDashboardService)
		validate func(t *testing.T, service *DashboardSnapshotService, err error)
	}{
		{
			name: "registra workspaces com baixa utilização",
			setup: func(m *dashboardmocks.MockDashboardService) {
				m.EXPECT().
					GetAllWorkspacesDetailedStats(gomock.Any(), []domain.Workspace{{Name: "Acme", Token: "tok-acme"}, {Name: "Globex", Token: "tok-globex"}}).
					Return(&domain.DetailedStatsResponse{
						Data: []domain.WorkspaceDashboard{
							{WorkspaceName: "Acme", CapacityRatio: "40.00", HasLowCapacityWarning: true},
							{WorkspaceName: "Globex", CapacityRatio: "75.00"},
						},
					}, nil)
			},
			validate: func(t *testing.T, service *DashboardSnapshotService, err error) {
				require.NoError(t, err)

				status := service.GetStatus()
				assert.Equal(t, []string{"Acme"}, status["low_capacity_workspaces"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.Len(t, status["last_run_id"], 8)
			},
		},
		{
			name: "falha na consolidação fica registrada no status",
			setup: func(m *dashboardmocks.MockDashboardService) {
				m.EXPECT().
					GetAllWorkspacesDetailedStats(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("workspace Globex: status 401"))
			},
			validate: func(t *testing.T, service *DashboardSnapshotService, err error) {
				assert.Error(t, err)

				status := service.GetStatus()
				assert.Equal(t, "workspace Globex: status 401", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockDashboard := newSnapshotService(t, true)
			tt.setup(mockDashboard)

			err := service.RunSnapshot(context.Background())

			tt.validate(t, service, err)
		})
	}
}

func TestDashboardSnapshotService_RunSnapshot_EmExecucao(t *testing.T) {
	service, _ := newSnapshotService(t, true)
	service.syncRunning = true

	// Sem expectativas no mock: a consolidação não pode ser chamada
	err := service.RunSnapshot(context.Background())

	assert.NoError(t, err)
}

func TestDashboardSnapshotService_Start_Desabilitado(t *testing.T) {
	service, _ := newSnapshotService(t, false)

	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestDashboardSnapshotService_Start_SnapshotInicialComCronDesabilitada(t *testing.T) {
	service, mockDashboard := newSnapshotService(t, false)
	service.config.RunOnStart = true

	done := make(chan struct{})
	mockDashboard.EXPECT().
		GetAllWorkspacesDetailedStats(gomock.Any(), service.workspaces).
		DoAndReturn(func(ctx context.Context, workspaces []domain.Workspace) (*domain.DetailedStatsResponse, error) {
			defer close(done)
			return &domain.DetailedStatsResponse{Data: []domain.WorkspaceDashboard{}}, nil
		})

	err := service.Start(context.Background())
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot inicial não foi executado")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
