package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository"
	"github.com/vfg2006/ad-automation-api/internal/api"
	"github.com/vfg2006/ad-automation-api/internal/config"
	"github.com/vfg2006/ad-automation-api/internal/scheduler"
	"github.com/vfg2006/ad-automation-api/internal/usecases/actioning"
	"github.com/vfg2006/ad-automation-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-automation-api/internal/usecases/scheduling"
	"github.com/vfg2006/ad-automation-api/internal/usecases/validating"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	ruleRepo := repository.NewRuleRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	ruleLogRepo := repository.NewRuleLogRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	aggregator := aggregating.NewService()
	gate := scheduling.NewService(ruleRepo)
	validator := validating.NewService(reportRepo, aggregator)
	actioner := actioning.NewService(metaIntegrator)

	// Inicializa o agendador de verificação de regras
	ruleCheckSyncService := scheduler.NewRuleCheckSyncService(
		ruleRepo,
		ruleLogRepo,
		gate,
		validator,
		actioner,
		cfg,
	)

	// Inicia o agendador em background
	if err := ruleCheckSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de regras")
	} else {
		logrus.Info("Agendador de verificação de regras iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ruleRepo,
		ruleLogRepo,
		gate,
		validator,
		ruleCheckSyncService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
