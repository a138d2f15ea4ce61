// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/outreach-dashboard-api/pkg/utils"
)

type DashboardSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
	RunOnStart   bool
}

// DashboardSnapshotService recalcula periodicamente a consolidação de todos os workspaces
// e registra nos logs a utilização de capacidade. O resultado não é persistido.
type DashboardSnapshotService struct {
	scheduler        *gocron.Scheduler
	dashboardService dashboard.DashboardService
	workspaces       []domain.Workspace
	config           DashboardSnapshotConfig

	syncMutex             sync.Mutex
	syncRunning           bool
	lastRunID             string
	lastSyncStartedAt     time.Time
	lastSyncCompletedAt   time.Time
	lastError             string
	lowCapacityWorkspaces []string
}

func NewDashboardSnapshotService(dashboardService dashboard.DashboardService, cfg *config.Config) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: cfg.DashboardSnapshot.CronSchedule, // Default: a cada 6 horas
		Enabled:      cfg.DashboardSnapshot.Enabled,      // Default: desabilitado
		RunOnStart:   cfg.DashboardSnapshot.RunOnStart,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"run_on_start":  snapshotConfig.RunOnStart,
	}).Info("Configuração do agendador de snapshot do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler:        gocron.NewScheduler(time.Local),
		dashboardService: dashboardService,
		workspaces:       cfg.Workspaces,
		config:           snapshotConfig,
	}
}

// Start dispara o snapshot inicial (RunOnStart) e, se habilitada, agenda a cron.
// O snapshot inicial não depende da cron estar habilitada.
func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if s.config.RunOnStart {
		go func() {
			if err := s.RunSnapshot(ctx); err != nil {
				logrus.WithError(err).Error("Erro no snapshot inicial do dashboard")
			}
		}()
	}

	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro no snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot consolida todos os workspaces uma vez. Execuções simultâneas são ignoradas.
func (s *DashboardSnapshotService) RunSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Snapshot do dashboard já está em execução")
		return nil
	}

	runID := newRunID()
	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"workspaces": len(s.workspaces),
	})
	logger.Info("Iniciando snapshot do dashboard")

	resp, err := s.dashboardService.GetAllWorkspacesDetailedStats(ctx, s.workspaces)

	lowCapacity := []string{}
	if err == nil {
		for _, ws := range resp.Data {
			entry := logger.WithFields(logrus.Fields{
				"workspace":          ws.WorkspaceName,
				"capacity_ratio":     ws.CapacityRatio,
				"total_scheduled":    ws.TotalScheduled,
				"total_max_capacity": ws.TotalMaxCapacity,
			})

			if ws.HasLowCapacityWarning {
				lowCapacity = append(lowCapacity, ws.WorkspaceName)
				entry.Warn("Workspace com baixa utilização da capacidade")
				continue
			}
			entry.Info("Utilização da capacidade do workspace")
		}
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lowCapacityWorkspaces = lowCapacity
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Falha no snapshot do dashboard")
		return err
	}

	logger.WithFields(logrus.Fields{
		"reply_rate":   resp.AggregateStats.Rates.ReplyRate,
		"bounce_rate":  resp.AggregateStats.Rates.BounceRate,
		"low_capacity": len(lowCapacity),
	}).Info("Snapshot do dashboard concluído")

	return nil
}

func newRunID() string {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return id
}

// TriggerManualSync inicia manualmente um snapshot do dashboard
func (s *DashboardSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual do dashboard")
	go func() {
		if err := s.RunSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual do dashboard")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":            s.config.Enabled,
		"sync_cron":               s.config.CronSchedule,
		"sync_running":            s.syncRunning,
		"last_run_id":             s.lastRunID,
		"last_sync_started_at":    s.lastSyncStartedAt,
		"last_sync_completed_at":  s.lastSyncCompletedAt,
		"last_error":              s.lastError,
		"low_capacity_workspaces": s.lowCapacityWorkspaces,
	}
}
