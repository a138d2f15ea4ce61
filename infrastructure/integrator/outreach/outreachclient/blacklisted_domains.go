package outreachclient

import (
	"context"
	"net/http"

	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
)

func (c *OutreachClient) ListBlacklistedDomains(ctx context.Context, token string) ([]outreachdomain.BlacklistedDomain, error) {
	const path = "/api/blacklisted-domains"

	body, err := c.doRequest(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[outreachdomain.BlacklistedDomain](body, path)
}
