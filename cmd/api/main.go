package main

import (
	"context"
	"net"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach"
	"github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach/outreachclient"
	"github.com/vfg2006/outreach-dashboard-api/internal/api"
	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/scheduler"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/replyrating"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/workspacing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outreachClient := outreachclient.NewClient(cfg)
	outreachIntegrator := outreach.New(outreachClient)

	classifier := classifying.NewService(&net.Resolver{})
	campaignService := campaigning.NewService(cfg, outreachIntegrator)
	workspaceService := workspacing.NewService(outreachIntegrator, campaignService)
	replyRateService := replyrating.NewService(outreachIntegrator, classifier)
	dashboardService := dashboard.NewService(cfg, workspaceService, replyRateService)

	snapshotService := scheduler.NewDashboardSnapshotService(dashboardService, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do dashboard")
	} else {
		logrus.Info("Agendador de snapshot do dashboard iniciado com sucesso")
	}

	logrus.WithFields(logrus.Fields{
		"workspaces":   len(cfg.Workspaces),
		"outreach_url": cfg.Outreach.URL,
	}).Info("Serviços do dashboard inicializados")

	server, err := api.New(cfg, dashboardService, snapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
