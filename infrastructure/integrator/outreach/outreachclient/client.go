package outreachclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	outreachdomain "github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client expõe as operações tipadas da plataforma de campanhas.
// Todas as chamadas recebem o token do workspace.
type Client interface {
	ListCampaigns(ctx context.Context, token string, params ListCampaignsParams) ([]outreachdomain.Campaign, error)
	ListCampaignSenderEmails(ctx context.Context, token string, campaignID int64) ([]outreachdomain.SenderEmail, error)
	ListScheduledEmails(ctx context.Context, token string, params ScheduledEmailsParams) ([]outreachdomain.ScheduledEmail, error)
	GetCampaignStats(ctx context.Context, token string, params CampaignStatsParams) (*outreachdomain.CampaignStats, error)
	ListSenderEmails(ctx context.Context, token string) ([]outreachdomain.SenderEmail, error)
	GetSenderEmail(ctx context.Context, token string, senderEmailID int64) (*outreachdomain.SenderEmail, error)
	ListSenderEmailReplies(ctx context.Context, token string, senderEmailID int64) ([]outreachdomain.Reply, error)
	ListBlacklistedDomains(ctx context.Context, token string) ([]outreachdomain.BlacklistedDomain, error)
}

// HTTPDoer é satisfeito por *http.Client
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type OutreachClient struct {
	baseURL    string
	httpClient HTTPDoer
}

// APIError representa uma resposta não-2xx da plataforma
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("outreach: %s %s falhou com status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// envelope é o formato { "data": ... } usado pela maioria dos endpoints
type envelope[T any] struct {
	Data T `json:"data"`
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Outreach.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return NewClientWithHTTP(cfg.Outreach.URL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP permite injetar o cliente HTTP (usado nos testes)
func NewClientWithHTTP(baseURL string, httpClient HTTPDoer) Client {
	return &OutreachClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// doRequest executa a requisição com o token do workspace e devolve o corpo da resposta
func (c *OutreachClient) doRequest(ctx context.Context, method, path, token string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "outreach: erro ao serializar o corpo da requisição")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "outreach: erro ao criar a requisição %s %s", method, path)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "outreach: erro ao executar a requisição %s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "outreach: erro ao ler a resposta de %s %s", method, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), 512),
		}
	}

	return respBody, nil
}

// decodeData decodifica respostas no formato { "data": ... }
func decodeData[T any](body []byte, path string) (T, error) {
	var resp envelope[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		return resp.Data, errors.Wrapf(err, "outreach: erro ao decodificar a resposta de %s", path)
	}

	return resp.Data, nil
}

// decodeList aceita tanto um array puro quanto { "data": [...] }
func decodeList[T any](body []byte, path string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Wrapf(err, "outreach: erro ao decodificar a lista de %s", path)
		}
		return nonNil(list), nil
	}

	list, err := decodeData[[]T](trimmed, path)
	if err != nil {
		return nil, err
	}

	return nonNil(list), nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
