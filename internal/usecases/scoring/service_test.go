package scoring

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

func newTestCustomer(id string) *domain.Customer {
	return &domain.Customer{
		ID:               id,
		FullName:         "Cliente Teste",
		CreditScore:      700,
		AccountBalance:   15000,
		AnnualIncome:     60000,
		TransactionCount: 12,
		AccountOpenedAt:  time.Now().AddDate(-2, 0, 0),
	}
}

func TestService_AssessCustomer(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(customerRepo *mocks.MockCustomerRepository, assessmentRepo *mocks.MockRiskAssessmentRepository, aiProvider *openaimocks.MockAIProvider, transactionRepo *mocks.MockTransactionRepository)
		validate func(t *testing.T, assessment *domain.RiskAssessment, err error)
	}{
		{
			name: "Cliente inexistente - deve retornar ErrCustomerNotFound",
			setup: func(customerRepo *mocks.MockCustomerRepository, _ *mocks.MockRiskAssessmentRepository, _ *openaimocks.MockAIProvider, _ *mocks.MockTransactionRepository) {
				customerRepo.EXPECT().
					GetCustomerByID("CUST404").
					Return(nil, nil)
			},
			validate: func(t *testing.T, assessment *domain.RiskAssessment, err error) {
				assert.Nil(t, assessment)
				assert.ErrorIs(t, err, ErrCustomerNotFound)
			},
		},
		{
			name: "Provedor de IA desabilitado - deve usar avaliação por regras",
			setup: func(customerRepo *mocks.MockCustomerRepository, assessmentRepo *mocks.MockRiskAssessmentRepository, aiProvider *openaimocks.MockAIProvider, _ *mocks.MockTransactionRepository) {
				customerRepo.EXPECT().
					GetCustomerByID("CUST404").
					Return(newTestCustomer("CUST404"), nil)

				aiProvider.EXPECT().Enabled().Return(false)

				assessmentRepo.EXPECT().
					CreateRiskAssessment(gomock.Any()).
					Return(nil)

				customerRepo.EXPECT().
					UpdateCustomerScores("CUST404", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, assessment *domain.RiskAssessment, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "rules", assessment.Source)
				assert.Equal(t, "CUST404", assessment.CustomerID)
				assert.Equal(t, domain.RiskAssessmentStatusActive, assessment.Status)
				assert.NotEmpty(t, assessment.ID)
				assert.GreaterOrEqual(t, assessment.RiskScore, 0.0)
				assert.LessOrEqual(t, assessment.RiskScore, 1.0)
				assert.Equal(t, domain.RiskLevelFromScore(assessment.RiskScore), assessment.RiskLevel)
				assert.NotEmpty(t, assessment.Factors)
				assert.NotEmpty(t, assessment.Recommendations)
				assert.True(t, assessment.ExpiresAt.After(time.Now()))
			},
		},
		{
			name: "Falha na chamada de IA - deve cair para a avaliação por regras",
			setup: func(customerRepo *mocks.MockCustomerRepository, assessmentRepo *mocks.MockRiskAssessmentRepository, aiProvider *openaimocks.MockAIProvider, transactionRepo *mocks.MockTransactionRepository) {
				customerRepo.EXPECT().
					GetCustomerByID("CUST404").
					Return(newTestCustomer("CUST404"), nil)

				aiProvider.EXPECT().Enabled().Return(true)

				transactionRepo.EXPECT().
					ListTransactions(gomock.Any()).
					Return(nil, nil)

				aiProvider.EXPECT().
					GenerateStructured(gomock.Any(), gomock.Any(), "risk_assessment", gomock.Any(), gomock.Any()).
					Return(errors.New("timeout"))

				assessmentRepo.EXPECT().
					CreateRiskAssessment(gomock.Any()).
					Return(nil)

				customerRepo.EXPECT().
					UpdateCustomerScores("CUST404", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, assessment *domain.RiskAssessment, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "rules", assessment.Source)
			},
		},
		{
			name: "Resposta de IA com nível inválido - deve derivar o nível da pontuação",
			setup: func(customerRepo *mocks.MockCustomerRepository, assessmentRepo *mocks.MockRiskAssessmentRepository, aiProvider *openaimocks.MockAIProvider, transactionRepo *mocks.MockTransactionRepository) {
				customerRepo.EXPECT().
					GetCustomerByID("CUST404").
					Return(newTestCustomer("CUST404"), nil)

				aiProvider.EXPECT().Enabled().Return(true)

				transactionRepo.EXPECT().
					ListTransactions(gomock.Any()).
					Return(nil, nil)

				aiProvider.EXPECT().
					GenerateStructured(gomock.Any(), gomock.Any(), "risk_assessment", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_, _, _ string, _ map[string]any, out any) error {
						response := out.(*aiAssessmentResponse)
						response.RiskScore = 1.7 // fora do intervalo, deve ser limitado a 1
						response.RiskLevel = "catastrophic"
						response.Factors = []string{"exposição concentrada"}
						response.Recommendations = []string{"revisão manual"}
						return nil
					})

				assessmentRepo.EXPECT().
					CreateRiskAssessment(gomock.Any()).
					Return(nil)

				customerRepo.EXPECT().
					UpdateCustomerScores("CUST404", 1.0, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, assessment *domain.RiskAssessment, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ai", assessment.Source)
				assert.Equal(t, 1.0, assessment.RiskScore)
				assert.Equal(t, domain.RiskLevelCritical, assessment.RiskLevel)
				assert.Equal(t, []string{"exposição concentrada"}, assessment.Factors)
			},
		},
		{
			name: "Falha ao persistir avaliação - deve propagar o erro",
			setup: func(customerRepo *mocks.MockCustomerRepository, assessmentRepo *mocks.MockRiskAssessmentRepository, aiProvider *openaimocks.MockAIProvider, _ *mocks.MockTransactionRepository) {
				customerRepo.EXPECT().
					GetCustomerByID("CUST404").
					Return(newTestCustomer("CUST404"), nil)

				aiProvider.EXPECT().Enabled().Return(false)

				assessmentRepo.EXPECT().
					CreateRiskAssessment(gomock.Any()).
					Return(errors.New("erro de conexão"))
			},
			validate: func(t *testing.T, assessment *domain.RiskAssessment, err error) {
				assert.Nil(t, assessment)
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
			assessmentRepo := mocks.NewMockRiskAssessmentRepository(ctrl)
			aiProvider := openaimocks.NewMockAIProvider(ctrl)

			tt.setup(customerRepo, assessmentRepo, aiProvider, transactionRepo)

			service := NewService(&config.Config{}, customerRepo, transactionRepo, assessmentRepo, aiProvider)

			assessment, err := service.AssessCustomer(context.Background(), "CUST404")
			tt.validate(t, assessment, err)
		})
	}
}

func TestService_AnalyzeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	assessmentRepo := mocks.NewMockRiskAssessmentRepository(ctrl)
	aiProvider := openaimocks.NewMockAIProvider(ctrl)

	// 25 clientes na carteira, mas o lote deve parar em 20
	customers := make([]*domain.Customer, 0, 25)
	for i := 0; i < 25; i++ {
		customers = append(customers, newTestCustomer("CUST"+string(rune('A'+i))))
	}

	customerRepo.EXPECT().ListCustomers(nil).Return(customers, nil)

	customerRepo.EXPECT().GetCustomerByID(gomock.Any()).
		DoAndReturn(func(id string) (*domain.Customer, error) {
			return newTestCustomer(id), nil
		}).Times(20)
	aiProvider.EXPECT().Enabled().Return(false).Times(20)
	assessmentRepo.EXPECT().CreateRiskAssessment(gomock.Any()).Return(nil).Times(20)
	customerRepo.EXPECT().UpdateCustomerScores(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(20)

	service := NewService(&config.Config{}, customerRepo, transactionRepo, assessmentRepo, aiProvider)

	assessments, err := service.AnalyzeBatch(context.Background())
	assert.NoError(t, err)
	assert.Len(t, assessments, 20)
}

func TestService_AnalyzeBatch_FalhaIndividualNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	assessmentRepo := mocks.NewMockRiskAssessmentRepository(ctrl)
	aiProvider := openaimocks.NewMockAIProvider(ctrl)

	customers := []*domain.Customer{newTestCustomer("CUST1"), newTestCustomer("CUST2")}

	customerRepo.EXPECT().ListCustomers(nil).Return(customers, nil)

	// CUST1 falha na busca individual, CUST2 completa normalmente
	customerRepo.EXPECT().GetCustomerByID("CUST1").Return(nil, errors.New("erro de banco"))
	customerRepo.EXPECT().GetCustomerByID("CUST2").Return(newTestCustomer("CUST2"), nil)
	aiProvider.EXPECT().Enabled().Return(false)
	assessmentRepo.EXPECT().CreateRiskAssessment(gomock.Any()).Return(nil)
	customerRepo.EXPECT().UpdateCustomerScores("CUST2", gomock.Any(), gomock.Any()).Return(nil)

	service := NewService(&config.Config{}, customerRepo, transactionRepo, assessmentRepo, aiProvider)

	assessments, err := service.AnalyzeBatch(context.Background())
	assert.NoError(t, err)
	assert.Len(t, assessments, 1)
	assert.Equal(t, "CUST2", assessments[0].CustomerID)
}

func TestService_UpdateAssessmentStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.RiskAssessmentStatus
		expectDB  bool
		expectErr error
	}{
		{name: "Status resolved é válido", status: domain.RiskAssessmentStatusResolved, expectDB: true},
		{name: "Status dismissed é válido", status: domain.RiskAssessmentStatusDismissed, expectDB: true},
		{name: "Status active é válido", status: domain.RiskAssessmentStatusActive, expectDB: true},
		{name: "Status desconhecido é rejeitado", status: "archived", expectErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			assessmentRepo := mocks.NewMockRiskAssessmentRepository(ctrl)
			if tt.expectDB {
				assessmentRepo.EXPECT().UpdateStatus("RA001", tt.status).Return(nil)
			}

			service := NewService(&config.Config{}, nil, nil, assessmentRepo, nil)

			err := service.UpdateAssessmentStatus(&domain.UpdateRiskAssessmentStatusRequest{
				ID:     "RA001",
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
