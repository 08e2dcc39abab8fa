package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/pkg/utils"
)

const (
	// Limite fixo de clientes por análise em lote, para não sobrecarregar a
	// API remota. Não é adaptativo
	batchAnalysisLimit = 20

	// Validade de uma avaliação de risco antes de expirar
	assessmentTTL = 90 * 24 * time.Hour

	recentTransactionsSample = 10
)

type RiskScorer interface {
	AssessCustomer(ctx context.Context, customerID string) (*domain.RiskAssessment, error)
	AnalyzeBatch(ctx context.Context) ([]*domain.RiskAssessment, error)
	ListAssessments(status *domain.RiskAssessmentStatus, customerID string, limit int) ([]*domain.RiskAssessment, error)
	UpdateAssessmentStatus(req *domain.UpdateRiskAssessmentStatusRequest) error
}

type Service struct {
	cfg             *config.Config
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	assessmentRepo  repository.RiskAssessmentRepository
	aiProvider      openai.AIProvider
}

func NewService(
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
	assessmentRepo repository.RiskAssessmentRepository,
	aiProvider openai.AIProvider,
) RiskScorer {
	return &Service{
		cfg:             cfg,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		assessmentRepo:  assessmentRepo,
		aiProvider:      aiProvider,
	}
}

// AssessCustomer avalia o risco de um único cliente. A chamada de IA é uma
// única ida e volta; qualquer falha cai para a avaliação por regras, então a
// operação só retorna erro por problemas de banco
func (s *Service) AssessCustomer(ctx context.Context, customerID string) (*domain.RiskAssessment, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	assessment := s.buildAssessment(customer)

	assessmentID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	assessment.ID = assessmentID

	if err := s.assessmentRepo.CreateRiskAssessment(assessment); err != nil {
		return nil, err
	}

	// Sobrescreve a pontuação do cliente com o resultado da avaliação
	if err := s.customerRepo.UpdateCustomerScores(customerID, assessment.RiskScore, customer.CustomerLifetimeValue); err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).
			Warn("Erro ao atualizar pontuação de risco do cliente")
	}

	return assessment, nil
}

// AnalyzeBatch avalia os clientes da carteira em sequência estrita, limitado
// a batchAnalysisLimit por execução. Falhas individuais são registradas e não
// interrompem o lote
func (s *Service) AnalyzeBatch(ctx context.Context) ([]*domain.RiskAssessment, error) {
	customers, err := s.customerRepo.ListCustomers(nil)
	if err != nil {
		return nil, err
	}

	if len(customers) > batchAnalysisLimit {
		customers = customers[:batchAnalysisLimit]
	}

	assessments := make([]*domain.RiskAssessment, 0, len(customers))

	for _, customer := range customers {
		assessment, err := s.AssessCustomer(ctx, customer.ID)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", customer.ID).
				Error("Erro ao avaliar cliente no lote")
			continue
		}

		assessments = append(assessments, assessment)
	}

	logrus.WithFields(logrus.Fields{
		"assessed": len(assessments),
		"limit":    batchAnalysisLimit,
	}).Info("Análise de risco em lote concluída")

	return assessments, nil
}

type aiAssessmentResponse struct {
	RiskScore       float64  `json:"risk_score"`
	RiskLevel       string   `json:"risk_level"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// buildAssessment tenta a avaliação por IA e cai para as regras em caso de falha
func (s *Service) buildAssessment(customer *domain.Customer) *domain.RiskAssessment {
	now := time.Now()

	if s.aiProvider != nil && s.aiProvider.Enabled() {
		assessment, err := s.aiAssessment(customer, now)
		if err == nil {
			return assessment
		}

		logrus.WithError(err).WithField("customer_id", customer.ID).
			Warn("Avaliação de risco por IA falhou, usando avaliação por regras")
	}

	return s.ruleAssessment(customer, now)
}

func (s *Service) ruleAssessment(customer *domain.Customer, now time.Time) *domain.RiskAssessment {
	score := FallbackRiskScore(customer)
	level := domain.RiskLevelFromScore(score)

	return &domain.RiskAssessment{
		CustomerID:      customer.ID,
		RiskScore:       score,
		RiskLevel:       level,
		Factors:         FallbackFactors(customer),
		Recommendations: FallbackRecommendations(level),
		Status:          domain.RiskAssessmentStatusActive,
		Source:          "rules",
		ExpiresAt:       now.Add(assessmentTTL),
	}
}

func (s *Service) aiAssessment(customer *domain.Customer, now time.Time) (*domain.RiskAssessment, error) {
	transactions, err := s.transactionRepo.ListTransactions(&domain.TransactionFilters{
		CustomerID: customer.ID,
		Limit:      recentTransactionsSample,
	})
	if err != nil {
		// Sem transações recentes a avaliação segue só com o perfil
		logrus.WithError(err).WithField("customer_id", customer.ID).
			Warn("Erro ao buscar transações recentes para avaliação de risco")
		transactions = nil
	}

	payload, err := json.Marshal(map[string]any{
		"customer":            customer,
		"recent_transactions": transactions,
	})
	if err != nil {
		return nil, err
	}

	var response aiAssessmentResponse
	err = s.aiProvider.GenerateStructured(
		riskAssessmentSystemPrompt,
		"Dados do cliente:\n"+string(payload),
		"risk_assessment",
		riskAssessmentSchema,
		&response,
	)
	if err != nil {
		return nil, err
	}

	score := clamp01(response.RiskScore)

	level := domain.RiskLevel(response.RiskLevel)
	switch level {
	case domain.RiskLevelLow, domain.RiskLevelMedium, domain.RiskLevelHigh, domain.RiskLevelCritical:
		// nível válido vindo do modelo
	default:
		level = domain.RiskLevelFromScore(score)
	}

	return &domain.RiskAssessment{
		CustomerID:      customer.ID,
		RiskScore:       score,
		RiskLevel:       level,
		Factors:         response.Factors,
		Recommendations: response.Recommendations,
		Status:          domain.RiskAssessmentStatusActive,
		Source:          "ai",
		ExpiresAt:       now.Add(assessmentTTL),
	}, nil
}

func (s *Service) ListAssessments(
	status *domain.RiskAssessmentStatus,
	customerID string,
	limit int,
) ([]*domain.RiskAssessment, error) {
	return s.assessmentRepo.ListRiskAssessments(status, customerID, limit)
}

func (s *Service) UpdateAssessmentStatus(req *domain.UpdateRiskAssessmentStatusRequest) error {
	switch req.Status {
	case domain.RiskAssessmentStatusActive,
		domain.RiskAssessmentStatusResolved,
		domain.RiskAssessmentStatusDismissed:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	return s.assessmentRepo.UpdateStatus(req.ID, req.Status)
}
