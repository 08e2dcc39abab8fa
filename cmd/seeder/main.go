package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/seeding"
)

func main() {
	customers := flag.Int("customers", 0, "quantidade de clientes a gerar (0 usa o padrão da configuração)")
	seed := flag.Int64("seed", 0, "semente do gerador (0 usa o relógio)")
	maxTransactions := flag.Int("max-transactions", 0, "máximo de transações por cliente (0 usa o padrão da configuração)")
	batchSize := flag.Int("batch-size", 0, "tamanho dos lotes de inserção (0 usa o padrão da configuração)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	customerRepo := repository.NewCustomerRepository(conn)
	transactionRepo := repository.NewTransactionRepository(conn)
	interactionRepo := repository.NewInteractionRepository(conn)

	seedService := seeding.NewService(cfg, customerRepo, transactionRepo, interactionRepo)

	startedAt := time.Now()
	result, err := seedService.Seed(ctx, seeding.Options{
		Customers:                  *customers,
		Seed:                       *seed,
		MaxTransactionsPerCustomer: *maxTransactions,
		BatchSize:                  *batchSize,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular o banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"customers":    result.Customers,
		"transactions": result.Transactions,
		"interactions": result.Interactions,
		"seed":         result.Seed,
		"elapsed":      time.Since(startedAt).String(),
	}).Info("Banco de dados populado com sucesso")
}
