// Package seeding gera e persiste a carga de dados sintéticos usada pelo
// dashboard em ambientes de demonstração
package seeding

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
)

// Options parametriza uma carga. Valores zerados caem para os padrões da config
type Options struct {
	Customers                  int   `json:"customers"`
	Seed                       int64 `json:"seed"`
	MaxTransactionsPerCustomer int   `json:"max_transactions_per_customer"`
	BatchSize                  int   `json:"batch_size"`
}

// Result resume o que foi inserido e com qual semente
type Result struct {
	Customers    int   `json:"customers"`
	Transactions int   `json:"transactions"`
	Interactions int   `json:"interactions"`
	Seed         int64 `json:"seed"`
}

type Seeder interface {
	Seed(ctx context.Context, opts Options) (*Result, error)
}

type Service struct {
	cfg             *config.Config
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	interactionRepo repository.InteractionRepository
}

func NewService(
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
	interactionRepo repository.InteractionRepository,
) Seeder {
	return &Service{
		cfg:             cfg,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		interactionRepo: interactionRepo,
	}
}

// Seed gera clientes, transações e interações correlacionados e os insere em
// lotes. A semente efetiva volta no resultado para permitir reexecução idêntica
func (s *Service) Seed(ctx context.Context, opts Options) (*Result, error) {
	opts = s.withDefaults(opts)

	generator := NewGenerator(opts.Seed, time.Now())

	customers := generator.GenerateCustomers(opts.Customers)
	transactions := generator.GenerateTransactions(customers, opts.MaxTransactionsPerCustomer)
	interactions := generator.GenerateInteractions(customers)

	if err := insertBatches(customers, opts.BatchSize, s.customerRepo.CreateCustomers); err != nil {
		return nil, err
	}

	if err := insertBatches(transactions, opts.BatchSize, s.transactionRepo.CreateTransactions); err != nil {
		return nil, err
	}

	if err := insertBatches(interactions, opts.BatchSize, s.interactionRepo.CreateInteractions); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customers":    len(customers),
		"transactions": len(transactions),
		"interactions": len(interactions),
		"seed":         generator.Seed(),
	}).Info("Carga de dados sintéticos concluída")

	return &Result{
		Customers:    len(customers),
		Transactions: len(transactions),
		Interactions: len(interactions),
		Seed:         generator.Seed(),
	}, nil
}

func (s *Service) withDefaults(opts Options) Options {
	if opts.Customers <= 0 {
		opts.Customers = s.cfg.Seeder.Customers
	}

	if opts.Seed == 0 {
		opts.Seed = s.cfg.Seeder.Seed
	}

	if opts.MaxTransactionsPerCustomer <= 0 {
		opts.MaxTransactionsPerCustomer = s.cfg.Seeder.Transactions
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = s.cfg.Seeder.BatchSize
	}

	return opts
}

// insertBatches fatia os registros no tamanho de lote e delega ao insert em massa
func insertBatches[T any](records []T, batchSize int, insert func([]T) error) error {
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		if err := insert(records[start:end]); err != nil {
			return err
		}
	}

	return nil
}
