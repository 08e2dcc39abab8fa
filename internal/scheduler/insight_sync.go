package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting"
)

// InsightSyncConfig representa a configuração do agendador de insights de portfólio
type InsightSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// InsightSyncService regenera periodicamente os insights de portfólio via IA.
// Quando o provedor está desabilitado ou falha, a rodada termina sem insights
type InsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              InsightSyncConfig
	insightService      insighting.Insighter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewInsightSyncService cria uma nova instância do serviço de sincronização de insights
func NewInsightSyncService(
	insightService insighting.Insighter,
	appConfig *config.Config,
) *InsightSyncService {
	insightConfig := InsightSyncConfig{
		CronSchedule: appConfig.InsightSync.CronSchedule,
		SyncEnabled:  appConfig.InsightSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": insightConfig.CronSchedule,
		"sync_enabled":  insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights de portfólio carregada")

	return &InsightSyncService{
		scheduler:      scheduler,
		config:         insightConfig,
		insightService: insightService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights de portfólio desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de insights de portfólio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncPortfolioInsights(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights de portfólio: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de insights de portfólio")
		s.scheduler.Stop()
	}()

	return nil
}

// syncPortfolioInsights roda uma rodada de geração de insights com exclusão mútua
func (s *InsightSyncService) syncPortfolioInsights(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração agendada de insights de portfólio")

	insights, err := s.insightService.GenerateInsights(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na geração agendada de insights de portfólio")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"insights":    len(insights),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Geração agendada de insights de portfólio concluída")
}

// TriggerManualSync inicia manualmente uma rodada de geração de insights
func (s *InsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de insights de portfólio")
	go s.syncPortfolioInsights(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *InsightSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
