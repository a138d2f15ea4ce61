package handler

import (
	"context"
	"net"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/outreach-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dashboardOperation é uma das consolidações globais do painel
type dashboardOperation[T any] func(ctx context.Context, workspaces []domain.Workspace) (*T, error)

// GetBasicData retorna as campanhas ativas de cada workspace
func GetBasicData(service dashboard.DashboardService, workspaces []domain.Workspace) http.Handler {
	return dashboardHandler[domain.BasicDataResponse]("dashboard-basic", service.GetAllWorkspacesBasicData, workspaces)
}

// GetDetailedStats retorna a consolidação completa com totais e taxas globais
func GetDetailedStats(service dashboard.DashboardService, workspaces []domain.Workspace) http.Handler {
	return dashboardHandler[domain.DetailedStatsResponse]("dashboard-details", service.GetAllWorkspacesDetailedStats, workspaces)
}

// GetReplyRates retorna a matriz de respostas por provedor de cada workspace
func GetReplyRates(service dashboard.DashboardService, workspaces []domain.Workspace) http.Handler {
	return dashboardHandler[domain.ReplyRatesResponse]("dashboard-reply-rates", service.GetAllWorkspaceReplyRatesByProvider, workspaces)
}

func dashboardHandler[T any](route string, operation dashboardOperation[T], workspaces []domain.Workspace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("route", route)

		logger.WithFields(log.Fields{
			"workspaces": len(workspaces),
		}).Info(route + ": consolidando workspaces")

		resp, err := operation(r.Context(), workspaces)
		if err != nil {
			logger.WithError(err).Error(route + ": erro ao consolidar workspaces")
			writeDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error(route + ": erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
			return
		}

		logger.Info(route + ": resposta enviada com sucesso")
	})
}

// writeDashboardError separa falhas de rede (timeout, conexão) das respostas de erro da plataforma
func writeDashboardError(w http.ResponseWriter, err error) {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Falha de comunicação com a plataforma de campanhas", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar a plataforma de campanhas", nil)
}
