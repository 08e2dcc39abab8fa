package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/api/handler"
	"github.com/vfg2006/bank-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/scheduler"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/analytics"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/customer"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/seeding"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/segmenting"
	"github.com/vfg2006/bank-intelligence-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	customerService customer.CustomerService,
	segmentService segmenting.Segmenter,
	riskService scoring.RiskScorer,
	insightService insighting.Insighter,
	analyticsService analytics.Analyzer,
	seedService seeding.Seeder,
	authenticator authenticating.Authenticator,
	insightSyncService *scheduler.InsightSyncService,
	riskExpirySweepService *scheduler.RiskExpirySweepService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		InsightSyncService:     insightSyncService,
		RiskExpirySweepService: riskExpirySweepService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Customers(customerService, insightService)...),
		router.WithRoutes(handler.Segments(segmentService)...),
		router.WithRoutes(handler.RiskAssessments(riskService)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Analytics(analyticsService)...),
		router.WithRoutes(handler.Seeding(seedService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
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
