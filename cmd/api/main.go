package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/api"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/scheduler"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/analytics"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/customer"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/seeding"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/segmenting"
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
	transactionRepo := repository.NewTransactionRepository(pgConn)
	interactionRepo := repository.NewInteractionRepository(pgConn)
	segmentRepo := repository.NewSegmentRepository(pgConn)
	riskRepo := repository.NewRiskAssessmentRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	openaiClient := openaiclient.NewClient(cfg)
	aiProvider := openai.New(cfg, openaiClient)

	customerService := customer.NewService(customerRepo, transactionRepo, interactionRepo)
	segmentService := segmenting.NewService(cfg, customerRepo, segmentRepo, aiProvider)
	riskService := scoring.NewService(cfg, customerRepo, transactionRepo, riskRepo, aiProvider)
	insightService := insighting.NewService(customerRepo, transactionRepo, insightRepo, aiProvider)
	analyticsService := analytics.NewService(customerRepo, transactionRepo, insightRepo, riskRepo)
	seedService := seeding.NewService(cfg, customerRepo, transactionRepo, interactionRepo)

	// Inicializa os agendadores de sincronização
	insightSyncService := scheduler.NewInsightSyncService(insightService, cfg)
	riskExpirySweepService := scheduler.NewRiskExpirySweepService(riskRepo, cfg)

	// Inicia os agendadores em background
	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de insights de portfólio")
	} else {
		logrus.Info("Agendador de insights de portfólio iniciado com sucesso")
	}

	if err := riskExpirySweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de avaliações de risco expiradas")
	} else {
		logrus.Info("Varredura de avaliações de risco expiradas iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		customerService,
		segmentService,
		riskService,
		insightService,
		analyticsService,
		seedService,
		authenticator,
		insightSyncService,
		riskExpirySweepService,
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
