// Package customer expõe as operações de consulta e manutenção da carteira
// de clientes usadas pelo dashboard
package customer

import (
	"errors"

	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

var ErrCustomerNotFound = errors.New("cliente não encontrado")

type CustomerService interface {
	ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error)
	GetCustomer(customerID string) (*domain.Customer, error)
	UpdateCustomer(req *domain.UpdateCustomerRequest) error
	ListTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	ListCustomerTransactions(customerID string, limit int) ([]*domain.Transaction, error)
	ListCustomerInteractions(customerID string, limit int) ([]*domain.CustomerInteraction, error)
}

type Service struct {
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	interactionRepo repository.InteractionRepository
}

func NewService(
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
	interactionRepo repository.InteractionRepository,
) CustomerService {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		interactionRepo: interactionRepo,
	}
}

func (s *Service) ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error) {
	return s.customerRepo.ListCustomers(filters)
}

func (s *Service) GetCustomer(customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

func (s *Service) UpdateCustomer(req *domain.UpdateCustomerRequest) error {
	return s.customerRepo.UpdateCustomer(req)
}

func (s *Service) ListTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(filters)
}

func (s *Service) ListCustomerTransactions(customerID string, limit int) ([]*domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(&domain.TransactionFilters{
		CustomerID: customerID,
		Limit:      limit,
	})
}

func (s *Service) ListCustomerInteractions(customerID string, limit int) ([]*domain.CustomerInteraction, error) {
	return s.interactionRepo.ListInteractionsByCustomer(customerID, limit)
}
