package insighting

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/pkg/utils"
)

const (
	// quantidade de clientes enviados como amostra no prompt de portfólio
	portfolioSampleSize = 30

	recentTransactionsSample = 10
)

type Insighter interface {
	GenerateInsights(ctx context.Context) ([]*domain.AIInsight, error)
	RecommendProducts(ctx context.Context, customerID string) ([]*domain.AIInsight, error)
	ListInsights(filters *domain.InsightFilters) ([]*domain.AIInsight, error)
	UpdateInsightStatus(req *domain.UpdateInsightStatusRequest) error
}

type Service struct {
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	insightRepo     repository.InsightRepository
	aiProvider      openai.AIProvider
}

func NewService(
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
	insightRepo repository.InsightRepository,
	aiProvider openai.AIProvider,
) Insighter {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		insightRepo:     insightRepo,
		aiProvider:      aiProvider,
	}
}

type aiInsightsResponse struct {
	Insights []struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Type        string  `json:"type"`
		Priority    string  `json:"priority"`
		Confidence  float64 `json:"confidence"`
	} `json:"insights"`
}

// GenerateInsights pede ao provedor de IA insights sobre a carteira inteira e
// persiste o resultado. Qualquer falha vira lista vazia — insights nunca
// bloqueiam o dashboard
func (s *Service) GenerateInsights(ctx context.Context) ([]*domain.AIInsight, error) {
	if s.aiProvider == nil || !s.aiProvider.Enabled() {
		logrus.Info("Provedor de IA desabilitado, nenhum insight gerado")
		return []*domain.AIInsight{}, nil
	}

	summary, err := s.customerRepo.GetPortfolioSummary()
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListCustomers(&domain.CustomerFilters{
		OrderBy: "balance",
		Limit:   portfolioSampleSize,
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(struct {
		Summary   *domain.PortfolioSummary `json:"summary"`
		Customers []*domain.Customer       `json:"top_customers"`
	}{Summary: summary, Customers: customers})
	if err != nil {
		return nil, err
	}

	var response aiInsightsResponse
	err = s.aiProvider.GenerateStructured(
		portfolioInsightsSystemPrompt,
		"Carteira:\n"+string(payload),
		"portfolio_insights",
		insightsSchema,
		&response,
	)
	if err != nil {
		logrus.WithError(err).Warn("Geração de insights falhou, retornando lista vazia")
		return []*domain.AIInsight{}, nil
	}

	insights := make([]*domain.AIInsight, 0, len(response.Insights))

	for _, parsed := range response.Insights {
		insight := buildInsight(nil, parsed.Title, parsed.Description, parsed.Type, parsed.Priority, parsed.Confidence)
		if insight == nil {
			continue
		}

		insights = append(insights, insight)
	}

	if err := s.insightRepo.CreateInsights(insights); err != nil {
		return nil, err
	}

	logrus.WithField("insights", len(insights)).Info("Insights de portfólio gerados")

	return insights, nil
}

type aiRecommendationsResponse struct {
	Recommendations []struct {
		Product    string  `json:"product"`
		Reason     string  `json:"reason"`
		Confidence float64 `json:"confidence"`
	} `json:"recommendations"`
}

// RecommendProducts gera ofertas de produto para um cliente específico a partir
// do perfil e das transações recentes. Falha da IA vira lista vazia
func (s *Service) RecommendProducts(ctx context.Context, customerID string) ([]*domain.AIInsight, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if s.aiProvider == nil || !s.aiProvider.Enabled() {
		return []*domain.AIInsight{}, nil
	}

	transactions, err := s.transactionRepo.ListTransactions(&domain.TransactionFilters{
		CustomerID: customerID,
		Limit:      recentTransactionsSample,
	})
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).
			Warn("Erro ao buscar transações recentes para recomendação")
		transactions = nil
	}

	payload, err := json.Marshal(struct {
		Customer     *domain.Customer      `json:"customer"`
		Transactions []*domain.Transaction `json:"recent_transactions"`
	}{Customer: customer, Transactions: transactions})
	if err != nil {
		return nil, err
	}

	var response aiRecommendationsResponse
	err = s.aiProvider.GenerateStructured(
		productRecommendationSystemPrompt,
		"Cliente:\n"+string(payload),
		"product_recommendations",
		recommendationsSchema,
		&response,
	)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).
			Warn("Recomendação de produtos falhou, retornando lista vazia")
		return []*domain.AIInsight{}, nil
	}

	insights := make([]*domain.AIInsight, 0, len(response.Recommendations))

	for _, rec := range response.Recommendations {
		insight := buildInsight(
			&customer.ID,
			rec.Product,
			rec.Reason,
			string(domain.InsightTypeProductOffer),
			string(domain.InsightPriorityMedium),
			rec.Confidence,
		)
		if insight == nil {
			continue
		}

		insights = append(insights, insight)
	}

	if err := s.insightRepo.CreateInsights(insights); err != nil {
		return nil, err
	}

	return insights, nil
}

// buildInsight normaliza uma entrada parseada da IA em um AIInsight persistível.
// Entradas sem título ou com tipo/prioridade desconhecidos são descartadas
func buildInsight(customerID *string, title, description, insightType, priority string, confidence float64) *domain.AIInsight {
	if title == "" {
		return nil
	}

	parsedType := domain.InsightType(insightType)
	switch parsedType {
	case domain.InsightTypeOpportunity, domain.InsightTypeRiskAlert, domain.InsightTypeRetention,
		domain.InsightTypeProductOffer, domain.InsightTypeTrend:
	default:
		logrus.WithField("type", insightType).Warn("Tipo de insight desconhecido descartado")
		return nil
	}

	parsedPriority := domain.InsightPriority(priority)
	switch parsedPriority {
	case domain.InsightPriorityLow, domain.InsightPriorityMedium, domain.InsightPriorityHigh:
	default:
		parsedPriority = domain.InsightPriorityLow
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	insightID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID de insight")
		return nil
	}

	now := time.Now()

	return &domain.AIInsight{
		ID:          insightID,
		CustomerID:  customerID,
		Title:       title,
		Description: description,
		Type:        parsedType,
		Priority:    parsedPriority,
		Confidence:  confidence,
		Status:      domain.InsightStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Service) ListInsights(filters *domain.InsightFilters) ([]*domain.AIInsight, error) {
	return s.insightRepo.ListInsights(filters)
}

func (s *Service) UpdateInsightStatus(req *domain.UpdateInsightStatusRequest) error {
	switch req.Status {
	case domain.InsightStatusNew, domain.InsightStatusAcknowledged, domain.InsightStatusDismissed:
	default:
		return ErrInvalidInsightStatus
	}

	return s.insightRepo.UpdateStatus(req.ID, req.Status)
}
