package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloutjet/admin-dashboard/internal/api/handler"
	"github.com/cloutjet/admin-dashboard/internal/api/handler/router"
	"github.com/cloutjet/admin-dashboard/internal/config"
	"github.com/cloutjet/admin-dashboard/internal/scheduler"
	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/internal/usecases/dashboard"
	"github.com/cloutjet/admin-dashboard/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	dashboardService dashboard.Dashboard,
	sessionSweepService *scheduler.SessionSweepService,
) (*Server, error) {
	jobs := handler.JobServices{
		scheduler.JobTypeSessionSweep: sessionSweepService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, authenticator, dashboardService, jobs),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas e a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	authenticator authenticating.Authenticator,
	dashboardService dashboard.Dashboard,
	jobs handler.JobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Pages(dashboardService)...),
		router.WithRoutes(handler.Actions(dashboardService)...),
		router.WithRoutes(handler.Audit(dashboardService)...),
		router.WithRoutes(handler.Jobs(jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
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
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
