package handler

import (
	"net/http"

	"github.com/vfg2006/outreach-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboard.DashboardService, workspaces []domain.Workspace) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/basic",
			Method:  http.MethodPost,
			Handler: GetBasicData(service, workspaces),
		},
		{
			Path:    "/api/dashboard/details",
			Method:  http.MethodPost,
			Handler: GetDetailedStats(service, workspaces),
		},
		{
			Path:    "/api/dashboard/reply-rates",
			Method:  http.MethodPost,
			Handler: GetReplyRates(service, workspaces),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
