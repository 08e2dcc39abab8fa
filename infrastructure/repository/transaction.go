package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

const transactionsTable = "transactions"

type TransactionRepository interface {
	ListTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	CreateTransactions(transactions []*domain.Transaction) error
	GetMonthlyVolumes(monthsBack int) ([]domain.MonthlyVolume, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) ListTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select("id", "customer_id", "type", "amount", "category", "occurred_at", "created_at").
		From(transactionsTable).
		OrderBy("occurred_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.CustomerID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_id": filters.CustomerID})
		}

		if filters.Type != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"type": *filters.Type})
		}

		if filters.Since != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"occurred_at": *filters.Since})
		}

		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
	}

	transactionsSQL, transactionsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(transactionsSQL, transactionsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		transaction := &domain.Transaction{}
		if err := rows.Scan(
			&transaction.ID,
			&transaction.CustomerID,
			&transaction.Type,
			&transaction.Amount,
			&transaction.Category,
			&transaction.OccurredAt,
			&transaction.CreatedAt,
		); err != nil {
			return nil, err
		}

		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return transactions, nil
}

// CreateTransactions insere as transações em lote
func (r *transactionRepository) CreateTransactions(transactions []*domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(transactionsTable).
		Columns("id", "customer_id", "type", "amount", "category", "occurred_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, transaction := range transactions {
		query = query.Values(
			transaction.ID,
			transaction.CustomerID,
			transaction.Type,
			transaction.Amount,
			transaction.Category,
			transaction.OccurredAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetMonthlyVolumes agrega contagem e valor total das transações por mês (mm-yyyy)
func (r *transactionRepository) GetMonthlyVolumes(monthsBack int) ([]domain.MonthlyVolume, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}

	rows, err := r.conn.Query(`
		SELECT
			TO_CHAR(occurred_at, 'MM-YYYY') AS month,
			COUNT(*),
			COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE occurred_at >= NOW() - ($1 * INTERVAL '1 month')
		GROUP BY month
		ORDER BY MIN(occurred_at) ASC
	`, monthsBack)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	volumes := make([]domain.MonthlyVolume, 0, monthsBack)
	for rows.Next() {
		var volume domain.MonthlyVolume
		if err := rows.Scan(&volume.Month, &volume.Count, &volume.TotalAmount); err != nil {
			return nil, err
		}
		volumes = append(volumes, volume)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return volumes, nil
}
