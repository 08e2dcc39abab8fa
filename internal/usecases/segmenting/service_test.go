package segmenting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	openaimocks "github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func portfolioCustomers() []*domain.Customer {
	openedAt := time.Now().AddDate(-3, 0, 0)
	return []*domain.Customer{
		{ID: "CUST1", AccountBalance: 250000, AnnualIncome: 180000, RiskScore: 0.2, AccountOpenedAt: openedAt},
		{ID: "CUST2", AccountBalance: 8000, AnnualIncome: 55000, RiskScore: 0.3, AccountOpenedAt: time.Now().AddDate(0, -10, 0)},
		{ID: "CUST3", AccountBalance: 1200, AnnualIncome: 30000, RiskScore: 0.9, AccountOpenedAt: openedAt},
	}
}

func TestService_RefreshSegments(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(customerRepo *mocks.MockCustomerRepository, segmentRepo *mocks.MockSegmentRepository, aiProvider *openaimocks.MockAIProvider)
		validate func(t *testing.T, response *domain.SegmentationResponse, err error)
	}{
		{
			name: "IA desabilitada - deve segmentar por regras e substituir os segmentos",
			setup: func(customerRepo *mocks.MockCustomerRepository, segmentRepo *mocks.MockSegmentRepository, aiProvider *openaimocks.MockAIProvider) {
				customerRepo.EXPECT().ListCustomers(nil).Return(portfolioCustomers(), nil)
				aiProvider.EXPECT().Enabled().Return(false)
				segmentRepo.EXPECT().
					ReplaceSegments(gomock.Any(), SourceRules, gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, SourceRules, response.Source)
				assert.NotEmpty(t, response.Segments)
			},
		},
		{
			name: "Falha na IA - deve cair para as regras",
			setup: func(customerRepo *mocks.MockCustomerRepository, segmentRepo *mocks.MockSegmentRepository, aiProvider *openaimocks.MockAIProvider) {
				customerRepo.EXPECT().ListCustomers(nil).Return(portfolioCustomers(), nil)
				aiProvider.EXPECT().Enabled().Return(true)
				aiProvider.EXPECT().
					GenerateStructured(gomock.Any(), gomock.Any(), "customer_segments", gomock.Any(), gomock.Any()).
					Return(errors.New("rate limit"))
				segmentRepo.EXPECT().
					ReplaceSegments(gomock.Any(), SourceRules, gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, SourceRules, response.Source)
			},
		},
		{
			name: "Proposta de IA válida - deve usar os segmentos do modelo e ignorar IDs desconhecidos",
			setup: func(customerRepo *mocks.MockCustomerRepository, segmentRepo *mocks.MockSegmentRepository, aiProvider *openaimocks.MockAIProvider) {
				customerRepo.EXPECT().ListCustomers(nil).Return(portfolioCustomers(), nil)
				aiProvider.EXPECT().Enabled().Return(true)
				aiProvider.EXPECT().
					GenerateStructured(gomock.Any(), gomock.Any(), "customer_segments", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_, _, _ string, _ map[string]any, out any) error {
						response := out.(*aiSegmentsResponse)
						response.Segments = []struct {
							Code        string   `json:"code"`
							Name        string   `json:"name"`
							Description string   `json:"description"`
							CustomerIDs []string `json:"customer_ids"`
						}{
							{
								Code:        "premium",
								Name:        "Clientes Premium",
								Description: "Alto saldo e baixo risco",
								CustomerIDs: []string{"CUST1", "CUST-FANTASMA"},
							},
							{
								Code:        "sem_membros",
								Name:        "Vazio",
								CustomerIDs: []string{"NAO-EXISTE"},
							},
						}
						return nil
					})
				segmentRepo.EXPECT().
					ReplaceSegments(gomock.Any(), SourceAI, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, segments []*domain.CustomerSegment, assignments []*domain.SegmentAssignment) error {
						assert.Len(t, segments, 1)
						assert.Equal(t, "premium", segments[0].Code)
						assert.Equal(t, 1, segments[0].MemberCount)
						assert.Len(t, assignments, 1)
						assert.Equal(t, "CUST1", assignments[0].CustomerID)
						return nil
					})
			},
			validate: func(t *testing.T, response *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, SourceAI, response.Source)
				assert.Len(t, response.Segments, 1)
				assert.Equal(t, []string{"CUST1"}, response.Segments[0].CustomerIDs)
			},
		},
		{
			name: "Carteira vazia - não chama a IA e persiste lista vazia",
			setup: func(customerRepo *mocks.MockCustomerRepository, segmentRepo *mocks.MockSegmentRepository, _ *openaimocks.MockAIProvider) {
				customerRepo.EXPECT().ListCustomers(nil).Return([]*domain.Customer{}, nil)
				segmentRepo.EXPECT().
					ReplaceSegments(gomock.Any(), SourceRules, gomock.Len(0), gomock.Len(0)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Empty(t, response.Segments)
			},
		},
		{
			name: "Falha ao persistir - deve propagar o erro",
			setup: func(customerRepo *mocks.MockCustomerRepository, segmentRepo *mocks.MockSegmentRepository, aiProvider *openaimocks.MockAIProvider) {
				customerRepo.EXPECT().ListCustomers(nil).Return(portfolioCustomers(), nil)
				aiProvider.EXPECT().Enabled().Return(false)
				segmentRepo.EXPECT().
					ReplaceSegments(gomock.Any(), SourceRules, gomock.Any(), gomock.Any()).
					Return(errors.New("deadlock"))
			},
			validate: func(t *testing.T, response *domain.SegmentationResponse, err error) {
				assert.Nil(t, response)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			customerRepo := mocks.NewMockCustomerRepository(ctrl)
			segmentRepo := mocks.NewMockSegmentRepository(ctrl)
			aiProvider := openaimocks.NewMockAIProvider(ctrl)

			tt.setup(customerRepo, segmentRepo, aiProvider)

			service := NewService(&config.Config{}, customerRepo, segmentRepo, aiProvider)

			response, err := service.RefreshSegments(context.Background())
			tt.validate(t, response, err)
		})
	}
}
