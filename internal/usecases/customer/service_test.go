package customer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetCustomer(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(customerRepo *mocks.MockCustomerRepository)
		validate func(t *testing.T, customer *domain.Customer, err error)
	}{
		{
			name: "Cliente encontrado",
			setup: func(customerRepo *mocks.MockCustomerRepository) {
				customerRepo.EXPECT().
					GetCustomerByID("CUST1").
					Return(&domain.Customer{ID: "CUST1", FullName: "Cliente Teste"}, nil)
			},
			validate: func(t *testing.T, customer *domain.Customer, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "CUST1", customer.ID)
			},
		},
		{
			name: "Cliente inexistente retorna ErrCustomerNotFound",
			setup: func(customerRepo *mocks.MockCustomerRepository) {
				customerRepo.EXPECT().GetCustomerByID("CUST1").Return(nil, nil)
			},
			validate: func(t *testing.T, customer *domain.Customer, err error) {
				assert.Nil(t, customer)
				assert.ErrorIs(t, err, ErrCustomerNotFound)
			},
		},
		{
			name: "Erro de banco é propagado",
			setup: func(customerRepo *mocks.MockCustomerRepository) {
				customerRepo.EXPECT().GetCustomerByID("CUST1").Return(nil, errors.New("erro de conexão"))
			},
			validate: func(t *testing.T, customer *domain.Customer, err error) {
				assert.Nil(t, customer)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrCustomerNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			customerRepo := mocks.NewMockCustomerRepository(ctrl)
			tt.setup(customerRepo)

			service := NewService(customerRepo, nil, nil)

			customer, err := service.GetCustomer("CUST1")
			tt.validate(t, customer, err)
		})
	}
}

func TestService_ListCustomerTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	transactionRepo.EXPECT().
		ListTransactions(&domain.TransactionFilters{CustomerID: "CUST1", Limit: 25}).
		Return([]*domain.Transaction{{ID: "TX1"}}, nil)

	service := NewService(nil, transactionRepo, nil)

	transactions, err := service.ListCustomerTransactions("CUST1", 25)
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestService_ListCustomerInteractions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	interactionRepo := mocks.NewMockInteractionRepository(ctrl)
	interactionRepo.EXPECT().
		ListInteractionsByCustomer("CUST1", 10).
		Return([]*domain.CustomerInteraction{{ID: "INT1"}}, nil)

	service := NewService(nil, nil, interactionRepo)

	interactions, err := service.ListCustomerInteractions("CUST1", 10)
	assert.NoError(t, err)
	assert.Len(t, interactions, 1)
}
