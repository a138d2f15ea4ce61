package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	replymocks "github.com/vfg2006/outreach-dashboard-api/internal/usecases/replyrating/mocks"
	workspacemocks "github.com/vfg2006/outreach-dashboard-api/internal/usecases/workspacing/mocks"
)

var (
	acme    = domain.Workspace{Name: "Acme", Token: "tok-acme"}
	globex  = domain.Workspace{Name: "Globex", Token: "tok-globex"}
	initech = domain.Workspace{Name: "Initech", Token: "tok-initech"}
)

func workspaceStats(name string, scheduled, capacity int64, counters domain.Counters) *domain.WorkspaceDetailedStats {
	ws := domain.ZeroWorkspaceDetailedStats(name)
	ws.TotalScheduled = scheduled
	ws.TotalMaxCapacity = capacity
	ws.Stats = domain.NewAggregatedStats(counters)
	return &ws
}

func newTestService(ctrl *gomock.Controller, strict bool) (DashboardService, *workspacemocks.MockWorkspaceAggregator, *replymocks.MockReplyRater) {
	mockWorkspaces := workspacemocks.NewMockWorkspaceAggregator(ctrl)
	mockReplies := replymocks.NewMockReplyRater(ctrl)

	cfg := &config.Config{Dashboard: config.Dashboard{DetailedStatsStrict: strict}}

	return NewService(cfg, mockWorkspaces, mockReplies), mockWorkspaces, mockReplies
}

func TestService_GetAllWorkspacesBasicData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockWorkspaces, _ := newTestService(ctrl, false)

	mockWorkspaces.EXPECT().GetWorkspaceBasicData(gomock.Any(), acme).
		Return(&domain.WorkspaceBasicData{WorkspaceName: "Acme", Campaigns: []domain.Campaign{{ID: 1, Name: "Q1"}}}, nil)
	mockWorkspaces.EXPECT().GetWorkspaceBasicData(gomock.Any(), globex).
		Return(nil, errors.New("status 401"))

	resp, err := service.GetAllWorkspacesBasicData(context.Background(), []domain.Workspace{acme, globex})
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Acme", resp.Data[0].WorkspaceName)
	assert.Len(t, resp.Data[0].Campaigns, 1)
	assert.Equal(t, "Globex", resp.Data[1].WorkspaceName)
	assert.NotNil(t, resp.Data[1].Campaigns)
	assert.Empty(t, resp.Data[1].Campaigns)
}

func TestService_GetAllWorkspaceReplyRatesByProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockReplies := newTestService(ctrl, false)

	rows := []domain.ProviderReplyRate{{ProviderCombination: "Google → Outlook", TotalReplies: 3, TotalSent: 10, ReplyRate: "30.00"}}

	mockReplies.EXPECT().GetReplyRatesByProvider(gomock.Any(), acme).
		Return(&domain.WorkspaceReplyRates{WorkspaceName: "Acme", Data: rows}, nil)
	mockReplies.EXPECT().GetReplyRatesByProvider(gomock.Any(), globex).
		Return(nil, errors.New("status 500"))

	resp, err := service.GetAllWorkspaceReplyRatesByProvider(context.Background(), []domain.Workspace{acme, globex})
	require.NoError(t, err)

	assert.Equal(t, []domain.WorkspaceReplyRates{
		{WorkspaceName: "Acme", Data: rows},
		{WorkspaceName: "Globex", Data: []domain.ProviderReplyRate{}},
	}, resp.Data)
}

func TestService_GetAllWorkspacesDetailedStats(t *testing.T) {
	allWorkspaces := []domain.Workspace{acme, globex, initech}

	tests := []struct {
		name       string
		strict     bool
		workspaces []domain.Workspace
		setup      func(m *workspacemocks.MockWorkspaceAggregator)
		validate func(t *testing.T, resp *domain.DetailedStatsResponse, err error)
	}{
		{
			name:       "combina totais, taxas e alerta de capacidade",
			workspaces: []domain.Workspace{acme, globex},
			setup: func(m *workspacemocks.MockWorkspaceAggregator) {
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), acme).
					Return(workspaceStats("Acme", 40, 100, domain.Counters{EmailsSent: 300, UniqueReplies: 30, Bounced: 6, Opened: 120, Interested: 4, TotalLeadsContacted: 250}), nil)
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), globex).
					Return(workspaceStats("Globex", 50, 100, domain.Counters{EmailsSent: 100, UniqueReplies: 10, Bounced: 2, Opened: 30, Interested: 1, TotalLeadsContacted: 50}), nil)
			},
			validate: func(t *testing.T, resp *domain.DetailedStatsResponse, err error) {
				require.NoError(t, err)

				assert.Equal(t, domain.GlobalMonthlyMetrics{
					EmailsSent:     400,
					Replies:        40,
					Bounces:        8,
					Interested:     5,
					LeadsContacted: 300,
					Opened:         150,
				}, resp.AggregateStats.MonthlyMetrics)
				assert.Equal(t, domain.GlobalCapacity{TotalScheduled: 90, TotalMaxCapacity: 200}, resp.AggregateStats.Capacity)
				assert.Equal(t, "10.00", resp.AggregateStats.Rates.ReplyRate)
				assert.Equal(t, "2.00", resp.AggregateStats.Rates.BounceRate)

				require.Len(t, resp.Data, 2)
				assert.Equal(t, "Acme", resp.Data[0].WorkspaceName)
				assert.Equal(t, "40.00", resp.Data[0].CapacityRatio)
				assert.True(t, resp.Data[0].HasLowCapacityWarning)
				assert.Equal(t, "Globex", resp.Data[1].WorkspaceName)
				assert.Equal(t, "50.00", resp.Data[1].CapacityRatio)
				assert.False(t, resp.Data[1].HasLowCapacityWarning)
				assert.Equal(t, "12.00", resp.Data[0].Stats.Replies.Percentage)
			},
		},
		{
			name:       "workspace com falha entra zerado",
			workspaces: allWorkspaces,
			setup: func(m *workspacemocks.MockWorkspaceAggregator) {
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), acme).
					Return(workspaceStats("Acme", 10, 10, domain.Counters{EmailsSent: 50, UniqueReplies: 5}), nil)
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), globex).
					Return(nil, errors.New("status 401"))
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), initech).
					Return(workspaceStats("Initech", 0, 0, domain.Counters{EmailsSent: 50}), nil)
			},
			validate: func(t *testing.T, resp *domain.DetailedStatsResponse, err error) {
				require.NoError(t, err)

				require.Len(t, resp.Data, 3)
				assert.Equal(t, "Globex", resp.Data[1].WorkspaceName)
				assert.Zero(t, resp.Data[1].TotalMaxCapacity)
				assert.Equal(t, "0.00", resp.Data[1].CapacityRatio)
				assert.True(t, resp.Data[1].HasLowCapacityWarning)

				assert.Equal(t, int64(100), resp.AggregateStats.MonthlyMetrics.EmailsSent)
				assert.Equal(t, "5.00", resp.AggregateStats.Rates.ReplyRate)
				assert.Equal(t, "100.00", resp.Data[0].CapacityRatio)
			},
		},
		{
			name:       "modo estrito retorna a falha",
			strict:     true,
			workspaces: allWorkspaces,
			setup: func(m *workspacemocks.MockWorkspaceAggregator) {
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), acme).
					Return(workspaceStats("Acme", 10, 10, domain.Counters{}), nil)
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), globex).
					Return(nil, errors.New("status 401"))
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), initech).
					Return(workspaceStats("Initech", 0, 0, domain.Counters{}), nil)
			},
			validate: func(t *testing.T, resp *domain.DetailedStatsResponse, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Globex")
				assert.Nil(t, resp)
			},
		},
		{
			name:       "sem envios as taxas globais são 0.00",
			workspaces: allWorkspaces,
			setup: func(m *workspacemocks.MockWorkspaceAggregator) {
				m.EXPECT().GetWorkspaceDetailedStats(gomock.Any(), gomock.Any()).
					Return(workspaceStats("Vazio", 0, 0, domain.Counters{}), nil).
					Times(3)
			},
			validate: func(t *testing.T, resp *domain.DetailedStatsResponse, err error) {
				require.NoError(t, err)

				assert.Equal(t, "0.00", resp.AggregateStats.Rates.ReplyRate)
				assert.Equal(t, "0.00", resp.AggregateStats.Rates.BounceRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockWorkspaces, _ := newTestService(ctrl, tt.strict)
			tt.setup(mockWorkspaces)

			resp, err := service.GetAllWorkspacesDetailedStats(context.Background(), tt.workspaces)

			tt.validate(t, resp, err)
		})
	}

	t.Run("lista de workspaces vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl, false)

		resp, err := service.GetAllWorkspacesDetailedStats(context.Background(), nil)
		require.NoError(t, err)

		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
		assert.Equal(t, "0.00", resp.AggregateStats.Rates.ReplyRate)
	})
}
