package analytics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetPortfolioSummary(t *testing.T) {
	t.Run("Completa o resumo com contadores de insights e alertas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		insightRepo := mocks.NewMockInsightRepository(ctrl)
		riskRepo := mocks.NewMockRiskAssessmentRepository(ctrl)

		customerRepo.EXPECT().GetPortfolioSummary().Return(&domain.PortfolioSummary{
			TotalCustomers: 150,
			TotalBalance:   2_500_000,
		}, nil)
		insightRepo.EXPECT().CountByStatus(domain.InsightStatusNew).Return(7, nil)
		riskRepo.EXPECT().CountActiveAlerts().Return(3, nil)

		service := NewService(customerRepo, nil, insightRepo, riskRepo)

		summary, err := service.GetPortfolioSummary()
		assert.NoError(t, err)
		assert.Equal(t, 150, summary.TotalCustomers)
		assert.Equal(t, 7, summary.ActiveInsights)
		assert.Equal(t, 3, summary.ActiveRiskAlerts)
	})

	t.Run("Falha nos contadores não derruba o resumo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerRepo := mocks.NewMockCustomerRepository(ctrl)
		insightRepo := mocks.NewMockInsightRepository(ctrl)
		riskRepo := mocks.NewMockRiskAssessmentRepository(ctrl)

		customerRepo.EXPECT().GetPortfolioSummary().Return(&domain.PortfolioSummary{TotalCustomers: 10}, nil)
		insightRepo.EXPECT().CountByStatus(domain.InsightStatusNew).Return(0, errors.New("timeout"))
		riskRepo.EXPECT().CountActiveAlerts().Return(0, errors.New("timeout"))

		service := NewService(customerRepo, nil, insightRepo, riskRepo)

		summary, err := service.GetPortfolioSummary()
		assert.NoError(t, err)
		assert.Equal(t, 10, summary.TotalCustomers)
		assert.Zero(t, summary.ActiveInsights)
		assert.Zero(t, summary.ActiveRiskAlerts)
	})

	t.Run("Falha no resumo base propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerRepo := mocks.NewMockCustomerRepository(ctrl)

		customerRepo.EXPECT().GetPortfolioSummary().Return(nil, errors.New("erro de banco"))

		service := NewService(customerRepo, nil, nil, nil)

		summary, err := service.GetPortfolioSummary()
		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	insightRepo := mocks.NewMockInsightRepository(ctrl)
	riskRepo := mocks.NewMockRiskAssessmentRepository(ctrl)

	customerRepo.EXPECT().GetPortfolioSummary().Return(&domain.PortfolioSummary{TotalCustomers: 42}, nil)
	insightRepo.EXPECT().CountByStatus(domain.InsightStatusNew).Return(2, nil)
	riskRepo.EXPECT().CountActiveAlerts().Return(1, nil)
	customerRepo.EXPECT().GetRiskDistribution().Return([]domain.RiskDistributionBucket{
		{Level: domain.RiskLevelLow, Count: 30},
		{Level: domain.RiskLevelHigh, Count: 12},
	}, nil)
	transactionRepo.EXPECT().GetMonthlyVolumes(defaultMonthsBack).Return([]domain.MonthlyVolume{
		{Month: "01-2024", Count: 120, TotalAmount: 45000},
	}, nil)

	service := NewService(customerRepo, transactionRepo, insightRepo, riskRepo)

	dashboard, err := service.GetDashboard()
	assert.NoError(t, err)
	assert.Equal(t, 42, dashboard.Summary.TotalCustomers)
	assert.Len(t, dashboard.RiskDistribution, 2)
	assert.Len(t, dashboard.MonthlyVolumes, 1)
	assert.False(t, dashboard.GeneratedAt.IsZero())
}

func TestService_GetMonthlyVolumes(t *testing.T) {
	tests := []struct {
		name       string
		monthsBack int
		expected   int
	}{
		{name: "Valor positivo é repassado", monthsBack: 6, expected: 6},
		{name: "Zero usa o padrão", monthsBack: 0, expected: defaultMonthsBack},
		{name: "Negativo usa o padrão", monthsBack: -3, expected: defaultMonthsBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transactionRepo := mocks.NewMockTransactionRepository(ctrl)
			transactionRepo.EXPECT().GetMonthlyVolumes(tt.expected).Return(nil, nil)

			service := NewService(nil, transactionRepo, nil, nil)

			_, err := service.GetMonthlyVolumes(tt.monthsBack)
			assert.NoError(t, err)
		})
	}
}
