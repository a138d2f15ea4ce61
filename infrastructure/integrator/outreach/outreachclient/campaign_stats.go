package outreachclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
)

type CampaignStatsParams struct {
	CampaignID int64
	StartDate  time.Time
	EndDate    time.Time
}

type campaignStatsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// GetCampaignStats busca os contadores da campanha no intervalo [StartDate, EndDate].
// Retorna nil (sem erro) quando a plataforma responde sem payload.
func (c *OutreachClient) GetCampaignStats(ctx context.Context, token string, params CampaignStatsParams) (*outreachdomain.CampaignStats, error) {
	path := fmt.Sprintf("/api/campaigns/%d/stats", params.CampaignID)

	request := campaignStatsRequest{
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
	}

	body, err := c.doRequest(ctx, http.MethodPost, path, token, nil, request)
	if err != nil {
		return nil, err
	}

	return decodeData[*outreachdomain.CampaignStats](body, path)
}
