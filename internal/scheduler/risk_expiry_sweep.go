package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
)

// RiskExpirySweepConfig representa a configuração da varredura de avaliações vencidas
type RiskExpirySweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// RiskExpirySweepService marca como resolvidas as avaliações de risco ativas
// que passaram do prazo de validade
type RiskExpirySweepService struct {
	scheduler            *gocron.Scheduler
	config               RiskExpirySweepConfig
	riskRepo             repository.RiskAssessmentRepository
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

// NewRiskExpirySweepService cria uma nova instância do serviço de varredura
func NewRiskExpirySweepService(
	riskRepo repository.RiskAssessmentRepository,
	appConfig *config.Config,
) *RiskExpirySweepService {
	sweepConfig := RiskExpirySweepConfig{
		CronSchedule: appConfig.RiskExpirySweep.CronSchedule,
		SweepEnabled: appConfig.RiskExpirySweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração da varredura de avaliações de risco carregada")

	return &RiskExpirySweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		riskRepo:     riskRepo,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *RiskExpirySweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de avaliações de risco desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de avaliações de risco")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepExpiredAssessments()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de avaliações de risco: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de avaliações de risco")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepExpiredAssessments resolve as avaliações ativas vencidas em uma única
// atualização no banco
func (s *RiskExpirySweepService) sweepExpiredAssessments() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de avaliações já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de avaliações de risco vencidas")

	resolved, err := s.riskRepo.ResolveExpired()
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de avaliações de risco vencidas")
		return
	}

	s.lastSweepCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"resolved":    resolved,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Varredura de avaliações de risco concluída")
}

// TriggerManualSweep inicia manualmente uma varredura
func (s *RiskExpirySweepService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de avaliações já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de avaliações de risco vencidas")
	go s.sweepExpiredAssessments()
}

// GetStatus retorna o status atual do agendador
func (s *RiskExpirySweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
