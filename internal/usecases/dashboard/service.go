package dashboard

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/replyrating"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/workspacing"
	"github.com/vfg2006/outreach-dashboard-api/pkg/utils"
)

// DashboardService consolida todos os workspaces nas três visões do painel.
// Os workspaces são sempre recebidos por parâmetro.
type DashboardService interface {
	GetAllWorkspacesBasicData(ctx context.Context, workspaces []domain.Workspace) (*domain.BasicDataResponse, error)
	GetAllWorkspacesDetailedStats(ctx context.Context, workspaces []domain.Workspace) (*domain.DetailedStatsResponse, error)
	GetAllWorkspaceReplyRatesByProvider(ctx context.Context, workspaces []domain.Workspace) (*domain.ReplyRatesResponse, error)
}

type Service struct {
	workspaceService workspacing.WorkspaceAggregator
	replyRateService replyrating.ReplyRater
	strictDetailed   bool
}

func NewService(
	cfg *config.Config,
	workspaceService workspacing.WorkspaceAggregator,
	replyRateService replyrating.ReplyRater,
) DashboardService {
	return &Service{
		workspaceService: workspaceService,
		replyRateService: replyRateService,
		strictDetailed:   cfg.Dashboard.DetailedStatsStrict,
	}
}

// GetAllWorkspacesBasicData lista as campanhas de cada workspace.
// Um workspace com falha aparece com a lista de campanhas vazia.
func (s *Service) GetAllWorkspacesBasicData(ctx context.Context, workspaces []domain.Workspace) (*domain.BasicDataResponse, error) {
	results := make([]domain.WorkspaceBasicData, len(workspaces))

	var wg sync.WaitGroup
	for i, workspace := range workspaces {
		wg.Add(1)
		go func(i int, workspace domain.Workspace) {
			defer wg.Done()

			data, err := s.workspaceService.GetWorkspaceBasicData(ctx, workspace)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"workspace": workspace.Name,
					"error":     err.Error(),
				}).Error("dashboard: falha ao buscar dados básicos do workspace")
				results[i] = domain.WorkspaceBasicData{WorkspaceName: workspace.Name, Campaigns: []domain.Campaign{}}
				return
			}

			results[i] = *data
		}(i, workspace)
	}
	wg.Wait()

	return &domain.BasicDataResponse{Data: results}, nil
}

// GetAllWorkspaceReplyRatesByProvider calcula a matriz de respostas de cada workspace.
// Um workspace com falha aparece com data vazio.
func (s *Service) GetAllWorkspaceReplyRatesByProvider(ctx context.Context, workspaces []domain.Workspace) (*domain.ReplyRatesResponse, error) {
	results := make([]domain.WorkspaceReplyRates, len(workspaces))

	var wg sync.WaitGroup
	for i, workspace := range workspaces {
		wg.Add(1)
		go func(i int, workspace domain.Workspace) {
			defer wg.Done()

			rates, err := s.replyRateService.GetReplyRatesByProvider(ctx, workspace)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"workspace": workspace.Name,
					"error":     err.Error(),
				}).Error("dashboard: falha ao calcular respostas por provedor do workspace")
				results[i] = domain.WorkspaceReplyRates{WorkspaceName: workspace.Name, Data: []domain.ProviderReplyRate{}}
				return
			}

			if rates.Data == nil {
				rates.Data = []domain.ProviderReplyRate{}
			}
			results[i] = *rates
		}(i, workspace)
	}
	wg.Wait()

	return &domain.ReplyRatesResponse{Data: results}, nil
}

// GetAllWorkspacesDetailedStats consolida os workspaces e calcula os totais e taxas globais.
// Por padrão um workspace com falha entra zerado; no modo estrito a primeira falha é retornada.
func (s *Service) GetAllWorkspacesDetailedStats(ctx context.Context, workspaces []domain.Workspace) (*domain.DetailedStatsResponse, error) {
	results := make([]domain.WorkspaceDetailedStats, len(workspaces))

	var g errgroup.Group
	for i, workspace := range workspaces {
		g.Go(func() error {
			stats, err := s.workspaceService.GetWorkspaceDetailedStats(ctx, workspace)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"workspace": workspace.Name,
					"strict":    s.strictDetailed,
					"error":     err.Error(),
				}).Error("dashboard: falha ao consolidar o workspace")

				if s.strictDetailed {
					return errors.Wrapf(err, "workspace %s", workspace.Name)
				}

				results[i] = domain.ZeroWorkspaceDetailedStats(workspace.Name)
				return nil
			}

			results[i] = *stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildDetailedStatsResponse(results), nil
}

func buildDetailedStatsResponse(workspaces []domain.WorkspaceDetailedStats) *domain.DetailedStatsResponse {
	var (
		metrics  domain.GlobalMonthlyMetrics
		capacity domain.GlobalCapacity
	)

	data := make([]domain.WorkspaceDashboard, 0, len(workspaces))
	for _, ws := range workspaces {
		metrics.EmailsSent += ws.Stats.EmailsSent
		metrics.Replies += ws.Stats.UniqueReplies
		metrics.Bounces += ws.Stats.Bounced
		metrics.Interested += ws.Stats.Interested
		metrics.LeadsContacted += ws.Stats.TotalLeadsContacted
		metrics.Opened += ws.Stats.Opened

		capacity.TotalScheduled += ws.TotalScheduled
		capacity.TotalMaxCapacity += ws.TotalMaxCapacity

		dashboard := domain.NewWorkspaceDashboard(ws)
		if dashboard.HasLowCapacityWarning {
			logrus.WithFields(logrus.Fields{
				"workspace":      ws.WorkspaceName,
				"capacity_ratio": dashboard.CapacityRatio,
			}).Debug("dashboard: workspace com baixa utilização da capacidade")
		}

		data = append(data, dashboard)
	}

	return &domain.DetailedStatsResponse{
		AggregateStats: domain.GlobalAggregateStats{
			MonthlyMetrics: metrics,
			Capacity:       capacity,
			Rates: domain.GlobalRates{
				ReplyRate:  utils.FormatPercentage(metrics.Replies, metrics.EmailsSent),
				BounceRate: utils.FormatPercentage(metrics.Bounces, metrics.EmailsSent),
			},
		},
		Data: data,
	}
}
