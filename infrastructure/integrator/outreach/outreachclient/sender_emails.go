package outreachclient

import (
	"context"
	"fmt"
	"net/http"

	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
)

func (c *OutreachClient) ListSenderEmails(ctx context.Context, token string) ([]outreachdomain.SenderEmail, error) {
	const path = "/api/sender-emails"

	body, err := c.doRequest(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[outreachdomain.SenderEmail](body, path)
}

func (c *OutreachClient) GetSenderEmail(ctx context.Context, token string, senderEmailID int64) (*outreachdomain.SenderEmail, error) {
	path := fmt.Sprintf("/api/sender-emails/%d", senderEmailID)

	body, err := c.doRequest(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	sender, err := decodeData[*outreachdomain.SenderEmail](body, path)
	if err != nil {
		return nil, err
	}

	if sender == nil {
		return nil, fmt.Errorf("outreach: sender email %d sem dados na resposta", senderEmailID)
	}

	return sender, nil
}

func (c *OutreachClient) ListSenderEmailReplies(ctx context.Context, token string, senderEmailID int64) ([]outreachdomain.Reply, error) {
	path := fmt.Sprintf("/api/sender-emails/%d/replies", senderEmailID)

	body, err := c.doRequest(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[outreachdomain.Reply](body, path)
}
