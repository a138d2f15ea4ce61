package workspacing

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/campaigning"
)

// WorkspaceAggregator consolida os dados de um workspace
type WorkspaceAggregator interface {
	// GetWorkspaceBasicData lista as campanhas ativas do workspace (id e nome)
	GetWorkspaceBasicData(ctx context.Context, workspace domain.Workspace) (*domain.WorkspaceBasicData, error)

	// GetWorkspaceDetailedStats soma capacidade, agendamentos e estatísticas de todas as campanhas
	GetWorkspaceDetailedStats(ctx context.Context, workspace domain.Workspace) (*domain.WorkspaceDetailedStats, error)
}

type Service struct {
	outreachService outreach.OutreachIntegrator
	campaignService campaigning.CampaignDetailer
}

func NewService(outreachService outreach.OutreachIntegrator, campaignService campaigning.CampaignDetailer) WorkspaceAggregator {
	return &Service{
		outreachService: outreachService,
		campaignService: campaignService,
	}
}

func (s *Service) GetWorkspaceBasicData(ctx context.Context, workspace domain.Workspace) (*domain.WorkspaceBasicData, error) {
	campaigns, err := s.outreachService.ListActiveCampaigns(ctx, workspace)
	if err != nil {
		return nil, errors.Wrapf(err, "campanhas do workspace %s", workspace.Name)
	}

	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	return &domain.WorkspaceBasicData{
		WorkspaceName: workspace.Name,
		Campaigns:     campaigns,
	}, nil
}

func (s *Service) GetWorkspaceDetailedStats(ctx context.Context, workspace domain.Workspace) (*domain.WorkspaceDetailedStats, error) {
	var (
		campaigns []domain.Campaign
		blacklist []domain.BlacklistedDomain
	)

	var g errgroup.Group

	g.Go(func() error {
		var err error
		campaigns, err = s.outreachService.ListActiveCampaigns(ctx, workspace)
		return err
	})

	g.Go(func() error {
		var err error
		blacklist, err = s.outreachService.ListBlacklistedDomains(ctx, workspace)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "dados do workspace %s", workspace.Name)
	}

	details := s.collectCampaignDetails(ctx, workspace, campaigns)

	result := domain.ZeroWorkspaceDetailedStats(workspace.Name)
	result.Campaigns = details
	if blacklist != nil {
		result.BlacklistedDomains = blacklist
	}

	series := make([][]domain.MonthlyStat, 0, len(details))
	for _, detail := range details {
		result.TotalMaxCapacity += detail.MaxDailyCapacity
		result.TotalScheduled += detail.ScheduledEmailsCount
		series = append(series, detail.MonthlyStats)
	}

	result.MonthlyStats = domain.MergeMonthlyStats(series...)
	result.Stats = domain.AggregateMonthlyStats(result.MonthlyStats)

	logrus.WithFields(logrus.Fields{
		"workspace":          workspace.Name,
		"campaigns":          len(details),
		"total_max_capacity": result.TotalMaxCapacity,
		"total_scheduled":    result.TotalScheduled,
	}).Info("workspacing: workspace consolidado")

	return &result, nil
}

// collectCampaignDetails busca os detalhes de todas as campanhas em paralelo.
// Uma campanha com falha entra zerada; a ordem de entrada é preservada.
func (s *Service) collectCampaignDetails(ctx context.Context, workspace domain.Workspace, campaigns []domain.Campaign) []domain.CampaignDetail {
	details := make([]domain.CampaignDetail, len(campaigns))

	var wg sync.WaitGroup
	for i, campaign := range campaigns {
		wg.Add(1)
		go func(i int, campaign domain.Campaign) {
			defer wg.Done()

			detail, err := s.campaignService.GetCampaignDetails(ctx, workspace, campaign)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"workspace":   workspace.Name,
					"campaign_id": campaign.ID,
					"error":       err.Error(),
				}).Error("workspacing: falha ao buscar detalhes da campanha, usando valores zerados")
				details[i] = domain.ZeroCampaignDetail(campaign)
				return
			}

			details[i] = *detail
		}(i, campaign)
	}
	wg.Wait()

	return details
}
