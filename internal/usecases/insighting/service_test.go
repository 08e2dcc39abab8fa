package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	openaimocks "github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GenerateInsights(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(customerRepo *mocks.MockCustomerRepository, insightRepo *mocks.MockInsightRepository, aiProvider *openaimocks.MockAIProvider)
		validate func(t *testing.T, insights []*domain.AIInsight, err error)
	}{
		{
			name: "Provedor desabilitado - retorna lista vazia sem tocar no banco",
			setup: func(_ *mocks.MockCustomerRepository, _ *mocks.MockInsightRepository, aiProvider *openaimocks.MockAIProvider) {
				aiProvider.EXPECT().Enabled().Return(false)
			},
			validate: func(t *testing.T, insights []*domain.AIInsight, err error) {
				assert.NoError(t, err)
				assert.Empty(t, insights)
			},
		},
		{
			name: "Falha na IA - retorna lista vazia sem erro",
			setup: func(customerRepo *mocks.MockCustomerRepository, _ *mocks.MockInsightRepository, aiProvider *openaimocks.MockAIProvider) {
				aiProvider.EXPECT().Enabled().Return(true)
				customerRepo.EXPECT().GetPortfolioSummary().Return(&domain.PortfolioSummary{}, nil)
				customerRepo.EXPECT().
					ListCustomers(gomock.Any()).
					Return([]*domain.Customer{{ID: "CUST1"}}, nil)
				aiProvider.EXPECT().
					GenerateStructured(gomock.Any(), gomock.Any(), "portfolio_insights", gomock.Any(), gomock.Any()).
					Return(errors.New("timeout"))
			},
			validate: func(t *testing.T, insights []*domain.AIInsight, err error) {
				assert.NoError(t, err)
				assert.Empty(t, insights)
			},
		},
		{
			name: "Resposta válida - normaliza, descarta entradas inválidas e persiste",
			setup: func(customerRepo *mocks.MockCustomerRepository, insightRepo *mocks.MockInsightRepository, aiProvider *openaimocks.MockAIProvider) {
				aiProvider.EXPECT().Enabled().Return(true)
				customerRepo.EXPECT().GetPortfolioSummary().Return(&domain.PortfolioSummary{TotalCustomers: 3}, nil)
				customerRepo.EXPECT().
					ListCustomers(gomock.Any()).
					Return([]*domain.Customer{{ID: "CUST1"}}, nil)
				aiProvider.EXPECT().
					GenerateStructured(gomock.Any(), gomock.Any(), "portfolio_insights", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_, _, _ string, _ map[string]any, out any) error {
						response := out.(*aiInsightsResponse)
						response.Insights = []struct {
							Title       string  `json:"title"`
							Description string  `json:"description"`
							Type        string  `json:"type"`
							Priority    string  `json:"priority"`
							Confidence  float64 `json:"confidence"`
						}{
							{Title: "Concentração em grandes saldos", Description: "20% dos clientes concentram o saldo", Type: "trend", Priority: "high", Confidence: 0.8},
							{Title: "", Type: "trend", Priority: "low", Confidence: 0.5},                                        // sem título, descartado
							{Title: "Tipo inválido", Type: "prophecy", Priority: "low", Confidence: 0.5},                        // tipo desconhecido, descartado
							{Title: "Prioridade inválida", Type: "opportunity", Priority: "urgentíssima", Confidence: 1.4},      // prioridade vira low, confiança limitada a 1
						}
						return nil
					})
				insightRepo.EXPECT().
					CreateInsights(gomock.Any()).
					DoAndReturn(func(insights []*domain.AIInsight) error {
						assert.Len(t, insights, 2)
						assert.Equal(t, domain.InsightTypeTrend, insights[0].Type)
						assert.Equal(t, domain.InsightPriorityHigh, insights[0].Priority)
						assert.Nil(t, insights[0].CustomerID)
						assert.Equal(t, domain.InsightPriorityLow, insights[1].Priority)
						assert.Equal(t, 1.0, insights[1].Confidence)
						assert.Equal(t, domain.InsightStatusNew, insights[1].Status)
						return nil
					})
			},
			validate: func(t *testing.T, insights []*domain.AIInsight, err error) {
				assert.NoError(t, err)
				assert.Len(t, insights, 2)
			},
		},
		{
			name: "Falha ao buscar resumo da carteira - propaga o erro",
			setup: func(customerRepo *mocks.MockCustomerRepository, _ *mocks.MockInsightRepository, aiProvider *openaimocks.MockAIProvider) {
				aiProvider.EXPECT().Enabled().Return(true)
				customerRepo.EXPECT().GetPortfolioSummary().Return(nil, errors.New("erro de banco"))
			},
			validate: func(t *testing.T, insights []*domain.AIInsight, err error) {
				assert.Nil(t, insights)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			customerRepo := mocks.NewMockCustomerRepository(ctrl)
			transactionRepo := mocks.NewMockTransactionRepository(ctrl)
			insightRepo := mocks.NewMockInsightRepository(ctrl)
			aiProvider := openaimocks.NewMockAIProvider(ctrl)

			tt.setup(customerRepo, insightRepo, aiProvider)

			service := NewService(customerRepo, transactionRepo, insightRepo, aiProvider)

			insights, err := service.GenerateInsights(context.Background())
			tt.validate(t, insights, err)
		})
	}
}

func TestService_RecommendProducts(t *testing.T) {
	customer := &domain.Customer{ID: "CUST1", FullName: "Cliente Teste", AccountBalance: 50000}

	t.Run("Cliente inexistente - retorna ErrCustomerNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		customerRepo.EXPECT().GetCustomerByID("CUST404").Return(nil, nil)

		service := NewService(customerRepo, nil, nil, nil)

		insights, err := service.RecommendProducts(context.Background(), "CUST404")
		assert.Nil(t, insights)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("Recomendações viram ofertas de produto vinculadas ao cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		transactionRepo := mocks.NewMockTransactionRepository(ctrl)
		insightRepo := mocks.NewMockInsightRepository(ctrl)
		aiProvider := openaimocks.NewMockAIProvider(ctrl)

		customerRepo.EXPECT().GetCustomerByID("CUST1").Return(customer, nil)
		aiProvider.EXPECT().Enabled().Return(true)
		transactionRepo.EXPECT().
			ListTransactions(gomock.Any()).
			Return([]*domain.Transaction{{ID: "TX1", CustomerID: "CUST1"}}, nil)
		aiProvider.EXPECT().
			GenerateStructured(gomock.Any(), gomock.Any(), "product_recommendations", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_, _, _ string, _ map[string]any, out any) error {
				response := out.(*aiRecommendationsResponse)
				response.Recommendations = []struct {
					Product    string  `json:"product"`
					Reason     string  `json:"reason"`
					Confidence float64 `json:"confidence"`
				}{
					{Product: "CDB liquidez diária", Reason: "Saldo parado em conta corrente", Confidence: 0.75},
				}
				return nil
			})
		insightRepo.EXPECT().CreateInsights(gomock.Any()).Return(nil)

		service := NewService(customerRepo, transactionRepo, insightRepo, aiProvider)

		insights, err := service.RecommendProducts(context.Background(), "CUST1")
		assert.NoError(t, err)
		assert.Len(t, insights, 1)
		assert.Equal(t, domain.InsightTypeProductOffer, insights[0].Type)
		assert.Equal(t, domain.InsightPriorityMedium, insights[0].Priority)
		if assert.NotNil(t, insights[0].CustomerID) {
			assert.Equal(t, "CUST1", *insights[0].CustomerID)
		}
	})

	t.Run("Erro ao buscar transações não interrompe a recomendação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		transactionRepo := mocks.NewMockTransactionRepository(ctrl)
		insightRepo := mocks.NewMockInsightRepository(ctrl)
		aiProvider := openaimocks.NewMockAIProvider(ctrl)

		customerRepo.EXPECT().GetCustomerByID("CUST1").Return(customer, nil)
		aiProvider.EXPECT().Enabled().Return(true)
		transactionRepo.EXPECT().
			ListTransactions(gomock.Any()).
			Return(nil, errors.New("timeout"))
		aiProvider.EXPECT().
			GenerateStructured(gomock.Any(), gomock.Any(), "product_recommendations", gomock.Any(), gomock.Any()).
			Return(nil)
		insightRepo.EXPECT().CreateInsights(gomock.Any()).Return(nil)

		service := NewService(customerRepo, transactionRepo, insightRepo, aiProvider)

		insights, err := service.RecommendProducts(context.Background(), "CUST1")
		assert.NoError(t, err)
		assert.Empty(t, insights)
	})
}

func TestService_UpdateInsightStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.InsightStatus
		expectDB  bool
		expectErr error
	}{
		{name: "Status acknowledged é válido", status: domain.InsightStatusAcknowledged, expectDB: true},
		{name: "Status dismissed é válido", status: domain.InsightStatusDismissed, expectDB: true},
		{name: "Status desconhecido é rejeitado", status: "archived", expectErr: ErrInvalidInsightStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			insightRepo := mocks.NewMockInsightRepository(ctrl)
			if tt.expectDB {
				insightRepo.EXPECT().UpdateStatus("INS001", tt.status).Return(nil)
			}

			service := NewService(nil, nil, insightRepo, nil)

			err := service.UpdateInsightStatus(&domain.UpdateInsightStatusRequest{
				ID:     "INS001",
				Status: tt.status,
			})

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
