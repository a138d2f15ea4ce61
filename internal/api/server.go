package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/outreach-dashboard-api/internal/api/handler"
	"github.com/vfg2006/outreach-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/outreach-dashboard-api/internal/config"
	"github.com/vfg2006/outreach-dashboard-api/internal/scheduler"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/outreach-dashboard-api/pkg/middleware"
)

// As consolidações fazem muitas chamadas à plataforma, então a escrita da resposta tem folga
const writeTimeout = 5 * time.Minute

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboardService dashboard.DashboardService,
	snapshotService *scheduler.DashboardSnapshotService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if snapshotService != nil {
		cronServices.DashboardSnapshotService = snapshotService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService, config.Workspaces)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      writeTimeout,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas (usado nos testes)
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
