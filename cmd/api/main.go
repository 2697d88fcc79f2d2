package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/cloutjet/admin-dashboard/infrastructure/database/postgres"
	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/cloutjetclient"
	"github.com/cloutjet/admin-dashboard/infrastructure/repository"
	"github.com/cloutjet/admin-dashboard/internal/api"
	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/config"
	"github.com/cloutjet/admin-dashboard/internal/format"
	"github.com/cloutjet/admin-dashboard/internal/scheduler"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/internal/usecases/dashboard"
	"github.com/sirupsen/logrus"
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

	cloutJetClient := cloutjetclient.NewClient(cfg)

	sessions := session.NewManager(cfg.Session.TTL, cache.WithSingleFlight(cfg.Cache.SingleFlight))
	formatter := format.New(cfg.Location(), cfg.Display.CurrencySymbol)

	auditRepo := repository.NewNoopAuditRepository()
	if cfg.Audit.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		auditRepo = repository.NewAuditRepository(pgConn)
		logrus.Info("Auditoria de ações administrativas habilitada")
	}

	authenticator := authenticating.NewService(cloutJetClient, sessions, cfg)
	dashboardService := dashboard.NewService(cloutJetClient, formatter, auditRepo)

	sessionSweepService := scheduler.NewSessionSweepService(sessions, cfg)
	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		dashboardService,
		sessionSweepService,
	)
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

// pgconn cria a conexão usada pela auditoria
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
