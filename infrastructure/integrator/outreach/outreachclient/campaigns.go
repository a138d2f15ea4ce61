package outreachclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
)

type ListCampaignsParams struct {
	Status string
}

func (c *OutreachClient) ListCampaigns(ctx context.Context, token string, params ListCampaignsParams) ([]outreachdomain.Campaign, error) {
	const path = "/api/campaigns"

	query := url.Values{}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	body, err := c.doRequest(ctx, http.MethodGet, path, token, query, nil)
	if err != nil {
		return nil, err
	}

	// Este endpoint às vezes devolve um array puro e às vezes { data: [...] }
	return decodeList[outreachdomain.Campaign](body, path)
}

func (c *OutreachClient) ListCampaignSenderEmails(ctx context.Context, token string, campaignID int64) ([]outreachdomain.SenderEmail, error) {
	path := fmt.Sprintf("/api/campaigns/%d/sender-emails", campaignID)

	body, err := c.doRequest(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[outreachdomain.SenderEmail](body, path)
}
