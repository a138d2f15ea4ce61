package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/outreach-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-dashboard-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeDashboardSnapshot = "dashboard-snapshot"
	CronJobTypeAll               = "all"
)

// CronJob é satisfeito pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DashboardSnapshotService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if !isValidCronType(cronType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de cron job deve conter apenas letras minúsculas, números e hífen", nil)
			return
		}

		switch cronType {
		case CronJobTypeDashboardSnapshot, CronJobTypeAll:
			if services.DashboardSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Serviço de snapshot do dashboard não disponível", nil)
				return
			}
			services.DashboardSnapshotService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-snapshot, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

func isValidCronType(cronType string) bool {
	for _, c := range cronType {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DashboardSnapshotService != nil {
			status[CronJobTypeDashboardSnapshot] = services.DashboardSnapshotService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
