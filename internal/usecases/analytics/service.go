// Package analytics monta os agregados de leitura exibidos nas páginas do
// dashboard. Tudo aqui é derivado por SQL; nada é persistido
package analytics

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

// janela padrão dos gráficos de volume mensal
const defaultMonthsBack = 12

type Analyzer interface {
	GetDashboard() (*domain.AnalyticsResponse, error)
	GetPortfolioSummary() (*domain.PortfolioSummary, error)
	GetRiskDistribution() ([]domain.RiskDistributionBucket, error)
	GetMonthlyVolumes(monthsBack int) ([]domain.MonthlyVolume, error)
}

type Service struct {
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	insightRepo     repository.InsightRepository
	riskRepo        repository.RiskAssessmentRepository
}

func NewService(
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
	insightRepo repository.InsightRepository,
	riskRepo repository.RiskAssessmentRepository,
) Analyzer {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		insightRepo:     insightRepo,
		riskRepo:        riskRepo,
	}
}

// GetDashboard reúne em uma única resposta os agregados do painel principal
func (s *Service) GetDashboard() (*domain.AnalyticsResponse, error) {
	summary, err := s.GetPortfolioSummary()
	if err != nil {
		return nil, err
	}

	distribution, err := s.customerRepo.GetRiskDistribution()
	if err != nil {
		return nil, err
	}

	volumes, err := s.transactionRepo.GetMonthlyVolumes(defaultMonthsBack)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsResponse{
		Summary:          summary,
		RiskDistribution: distribution,
		MonthlyVolumes:   volumes,
		GeneratedAt:      time.Now(),
	}, nil
}

// GetPortfolioSummary completa o resumo dos clientes com os contadores de
// insights novos e alertas de risco ativos. Falha nos contadores não derruba
// o resumo, apenas zera o campo
func (s *Service) GetPortfolioSummary() (*domain.PortfolioSummary, error) {
	summary, err := s.customerRepo.GetPortfolioSummary()
	if err != nil {
		return nil, err
	}

	activeInsights, err := s.insightRepo.CountByStatus(domain.InsightStatusNew)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao contar insights novos")
	}
	summary.ActiveInsights = activeInsights

	activeAlerts, err := s.riskRepo.CountActiveAlerts()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao contar alertas de risco ativos")
	}
	summary.ActiveRiskAlerts = activeAlerts

	return summary, nil
}

func (s *Service) GetRiskDistribution() ([]domain.RiskDistributionBucket, error) {
	return s.customerRepo.GetRiskDistribution()
}

func (s *Service) GetMonthlyVolumes(monthsBack int) ([]domain.MonthlyVolume, error) {
	if monthsBack <= 0 {
		monthsBack = defaultMonthsBack
	}

	return s.transactionRepo.GetMonthlyVolumes(monthsBack)
}
