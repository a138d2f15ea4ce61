package campaigning

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach"
	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/pkg/utils"
)

const defaultMonthlyStatsWindow = 12

// CampaignDetailer monta os detalhes de uma campanha
type CampaignDetailer interface {
	// GetMonthlyStats busca as estatísticas dos últimos N meses, do mais recente para o mais antigo
	GetMonthlyStats(ctx context.Context, workspace domain.Workspace, campaignID int64) ([]domain.MonthlyStat, error)

	// GetCampaignDetails consolida capacidade, agendamentos de hoje e estatísticas mensais
	GetCampaignDetails(ctx context.Context, workspace domain.Workspace, campaign domain.Campaign) (*domain.CampaignDetail, error)
}

type Service struct {
	outreachService outreach.OutreachIntegrator
	monthsWindow    int
	now             func() time.Time
}

func NewService(cfg *config.Config, outreachService outreach.OutreachIntegrator) CampaignDetailer {
	window := cfg.Dashboard.MonthlyStatsWindow
	if window <= 0 {
		window = defaultMonthlyStatsWindow
	}

	return &Service{
		outreachService: outreachService,
		monthsWindow:    window,
		now:             time.Now,
	}
}

func (s *Service) GetMonthlyStats(ctx context.Context, workspace domain.Workspace, campaignID int64) ([]domain.MonthlyStat, error) {
	periods := utils.LastNMonths(s.now(), s.monthsWindow)
	monthlyStats := make([]domain.MonthlyStat, 0, len(periods))

	// Um mês por vez, na ordem, para não sobrecarregar a plataforma
	for _, period := range periods {
		stats, err := s.outreachService.GetCampaignStats(ctx, workspace, campaignID, period)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"workspace":   workspace.Name,
				"campaign_id": campaignID,
				"period":      period.Label(),
				"error":       err.Error(),
			}).Error("campaigning: falha ao buscar estatísticas mensais")
			return nil, errors.Wrapf(err, "estatísticas da campanha %d em %s", campaignID, period.Label())
		}

		monthlyStats = append(monthlyStats, domain.MonthlyStat{
			Year:  period.Year,
			Month: period.Month,
			Stats: stats,
		})
	}

	return monthlyStats, nil
}

func (s *Service) GetCampaignDetails(ctx context.Context, workspace domain.Workspace, campaign domain.Campaign) (*domain.CampaignDetail, error) {
	var (
		senders        []domain.SenderIdentity
		scheduledCount int64
		monthlyStats   []domain.MonthlyStat
	)

	// As três fontes são independentes; uma falha não cancela as outras
	var g errgroup.Group

	g.Go(func() error {
		var err error
		senders, err = s.outreachService.ListCampaignSenders(ctx, workspace, campaign.ID)
		return err
	})

	g.Go(func() error {
		var err error
		scheduledCount, err = s.outreachService.CountScheduledEmails(ctx, workspace, campaign.ID, s.now())
		return err
	})

	g.Go(func() error {
		var err error
		monthlyStats, err = s.GetMonthlyStats(ctx, workspace, campaign.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "detalhes da campanha %d", campaign.ID)
	}

	detail := domain.NewCampaignDetail(
		campaign,
		domain.CalculateMaxDailyCapacity(senders),
		scheduledCount,
		monthlyStats,
	)

	logrus.WithFields(logrus.Fields{
		"workspace":          workspace.Name,
		"campaign_id":        campaign.ID,
		"max_daily_capacity": detail.MaxDailyCapacity,
		"scheduled":          detail.ScheduledEmailsCount,
	}).Debug("campaigning: detalhes da campanha consolidados")

	return &detail, nil
}
