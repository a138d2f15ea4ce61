package outreach

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
	"github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/outreachclient"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/pkg/utils"
)

const activeCampaignStatus = "active"

// OutreachIntegrator converte as respostas da plataforma para os tipos de domínio
type OutreachIntegrator interface {
	ListActiveCampaigns(ctx context.Context, workspace domain.Workspace) ([]domain.Campaign, error)
	ListCampaignSenders(ctx context.Context, workspace domain.Workspace, campaignID int64) ([]domain.SenderIdentity, error)
	CountScheduledEmails(ctx context.Context, workspace domain.Workspace, campaignID int64, date time.Time) (int64, error)
	GetCampaignStats(ctx context.Context, workspace domain.Workspace, campaignID int64, period utils.MonthPeriod) (*domain.Counters, error)
	ListSenderEmails(ctx context.Context, workspace domain.Workspace) ([]domain.SenderIdentity, error)
	GetSenderEmail(ctx context.Context, workspace domain.Workspace, senderEmailID int64) (*domain.SenderIdentity, error)
	ListSenderEmailReplies(ctx context.Context, workspace domain.Workspace, senderEmailID int64) ([]domain.Reply, error)
	ListBlacklistedDomains(ctx context.Context, workspace domain.Workspace) ([]domain.BlacklistedDomain, error)
}

type OutreachService struct {
	Client outreachclient.Client
}

func New(client outreachclient.Client) OutreachIntegrator {
	return &OutreachService{
		Client: client,
	}
}

func (s *OutreachService) ListActiveCampaigns(ctx context.Context, workspace domain.Workspace) ([]domain.Campaign, error) {
	resp, err := s.Client.ListCampaigns(ctx, workspace.Token, outreachclient.ListCampaignsParams{Status: activeCampaignStatus})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace": workspace.Name,
			"error":     err.Error(),
		}).Error("outreach: falha ao listar campanhas")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaigns = append(campaigns, domain.Campaign{ID: c.ID, Name: c.Name})
	}

	return campaigns, nil
}

func (s *OutreachService) ListCampaignSenders(ctx context.Context, workspace domain.Workspace, campaignID int64) ([]domain.SenderIdentity, error) {
	resp, err := s.Client.ListCampaignSenderEmails(ctx, workspace.Token, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace":   workspace.Name,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("outreach: falha ao listar remetentes da campanha")
		return nil, err
	}

	return toSenderIdentities(resp), nil
}

func (s *OutreachService) CountScheduledEmails(ctx context.Context, workspace domain.Workspace, campaignID int64, date time.Time) (int64, error) {
	resp, err := s.Client.ListScheduledEmails(ctx, workspace.Token, outreachclient.ScheduledEmailsParams{
		CampaignID: campaignID,
		Date:       date,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace":   workspace.Name,
			"campaign_id": campaignID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("outreach: falha ao listar e-mails agendados")
		return 0, err
	}

	return int64(len(resp)), nil
}

func (s *OutreachService) GetCampaignStats(ctx context.Context, workspace domain.Workspace, campaignID int64, period utils.MonthPeriod) (*domain.Counters, error) {
	resp, err := s.Client.GetCampaignStats(ctx, workspace.Token, outreachclient.CampaignStatsParams{
		CampaignID: campaignID,
		StartDate:  period.StartDate,
		EndDate:    period.EndDate,
	})
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, nil
	}

	return &domain.Counters{
		EmailsSent:          resp.EmailsSent.Int64(),
		Opened:              resp.Opened.Int64(),
		UniqueOpened:        resp.UniqueOpened.Int64(),
		UniqueReplies:       resp.UniqueRepliesPerContact.Int64(),
		Bounced:             resp.Bounced.Int64(),
		Interested:          resp.Interested.Int64(),
		TotalLeadsContacted: resp.TotalLeadsContacted.Int64(),
	}, nil
}

func (s *OutreachService) ListSenderEmails(ctx context.Context, workspace domain.Workspace) ([]domain.SenderIdentity, error) {
	resp, err := s.Client.ListSenderEmails(ctx, workspace.Token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace": workspace.Name,
			"error":     err.Error(),
		}).Error("outreach: falha ao listar remetentes")
		return nil, err
	}

	return toSenderIdentities(resp), nil
}

func (s *OutreachService) GetSenderEmail(ctx context.Context, workspace domain.Workspace, senderEmailID int64) (*domain.SenderIdentity, error) {
	resp, err := s.Client.GetSenderEmail(ctx, workspace.Token, senderEmailID)
	if err != nil {
		return nil, err
	}

	sender := toSenderIdentity(*resp)
	return &sender, nil
}

func (s *OutreachService) ListSenderEmailReplies(ctx context.Context, workspace domain.Workspace, senderEmailID int64) ([]domain.Reply, error) {
	resp, err := s.Client.ListSenderEmailReplies(ctx, workspace.Token, senderEmailID)
	if err != nil {
		return nil, err
	}

	replies := make([]domain.Reply, 0, len(resp))
	for _, r := range resp {
		replies = append(replies, domain.Reply{ID: r.ID, FromEmailAddress: r.FromEmailAddress})
	}

	return replies, nil
}

func (s *OutreachService) ListBlacklistedDomains(ctx context.Context, workspace domain.Workspace) ([]domain.BlacklistedDomain, error) {
	resp, err := s.Client.ListBlacklistedDomains(ctx, workspace.Token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace": workspace.Name,
			"error":     err.Error(),
		}).Error("outreach: falha ao listar domínios bloqueados")
		return nil, err
	}

	domains := make([]domain.BlacklistedDomain, 0, len(resp))
	for _, d := range resp {
		domains = append(domains, domain.BlacklistedDomain{ID: d.ID, Domain: d.Domain, CreatedAt: d.CreatedAt})
	}

	return domains, nil
}

func toSenderIdentities(senders []outreachdomain.SenderEmail) []domain.SenderIdentity {
	result := make([]domain.SenderIdentity, 0, len(senders))
	for _, s := range senders {
		result = append(result, toSenderIdentity(s))
	}
	return result
}

func toSenderIdentity(s outreachdomain.SenderEmail) domain.SenderIdentity {
	return domain.SenderIdentity{
		ID:              s.ID,
		Email:           s.Email,
		DailyLimit:      s.DailyLimit.Int64(),
		EmailsSentCount: s.EmailsSentCount.Int64(),
	}
}
