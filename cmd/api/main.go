package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider"
	"github.com/vfg2006/marketing-automation-api/infrastructure/provider/providerclient"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository"
	"github.com/vfg2006/marketing-automation-api/internal/api"
	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/scheduler"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/eventing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
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

	customerRepo := repository.NewCustomerRepository(pgConn)
	interestRepo := repository.NewInterestRepository(pgConn)
	segmentRepo := repository.NewSegmentRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	templateRepo := repository.NewTemplateRepository(pgConn)
	workflowRepo := repository.NewWorkflowRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	executionRepo := repository.NewExecutionRepository(pgConn)
	metricsRepo := repository.NewMetricsRepository(pgConn)
	interactionRepo := repository.NewInteractionRepository(pgConn)
	roiRepo := repository.NewROIRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	serviceLogRepo := repository.NewServiceLogRepository(pgConn)

	// Cliente HTTP dos provedores de entrega com auditoria de chamadas
	deliveryClient := providerclient.NewClient(cfg)
	deliveryIntegrator := provider.New(cfg, deliveryClient, serviceLogRepo)

	segmentService := segmenting.NewService(segmentRepo, customerRepo, interestRepo)

	campaignService := campaigning.NewService(
		campaignRepo,
		templateRepo,
		workflowRepo,
		taskRepo,
		executionRepo,
		metricsRepo,
		eventRepo,
		customerRepo,
		interestRepo,
		segmentService,
		deliveryIntegrator,
		cfg,
	)

	analyticsService := analyzing.NewService(
		interactionRepo,
		metricsRepo,
		roiRepo,
		campaignRepo,
		customerRepo,
		eventRepo,
	)

	eventService := eventing.NewService(eventRepo)
	eventing.RegisterDefaultHandlers(
		eventService,
		segmentService,
		campaignService,
		analyticsService,
		customerRepo,
		segmentRepo,
		metricsRepo,
	)

	// Inicializa os processadores em background
	workflowRunner := scheduler.NewWorkflowRunner(campaignService, cfg)
	eventSweeper := scheduler.NewEventSweeper(eventService, cfg)

	if err := workflowRunner.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o processador de workflows")
	} else {
		logrus.Info("Processador de workflows iniciado com sucesso")
	}

	if err := eventSweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o processador de eventos")
	} else {
		logrus.Info("Processador de eventos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		segmentService,
		campaignService,
		analyticsService,
		eventService,
		workflowRunner,
		eventSweeper,
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
