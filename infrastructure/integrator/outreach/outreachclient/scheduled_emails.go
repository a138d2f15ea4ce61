package outreachclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
)

type ScheduledEmailsParams struct {
	CampaignID int64
	Date       time.Time
}

func (c *OutreachClient) ListScheduledEmails(ctx context.Context, token string, params ScheduledEmailsParams) ([]outreachdomain.ScheduledEmail, error) {
	path := fmt.Sprintf("/api/campaigns/%d/scheduled-emails", params.CampaignID)

	day := params.Date.Format(time.DateOnly) + "T00:00:00"

	query := url.Values{}
	query.Set("status", "scheduled")
	query.Set("scheduled_date", day)
	query.Set("scheduled_date_local", day)

	body, err := c.doRequest(ctx, http.MethodGet, path, token, query, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[outreachdomain.ScheduledEmail](body, path)
}
