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

const customersTable = "customers"

type CustomerRepository interface {
	GetCustomerByID(customerID string) (*domain.Customer, error)
	ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error)
	CreateCustomers(customers []*domain.Customer) error
	UpdateCustomer(req *domain.UpdateCustomerRequest) error
	UpdateCustomerScores(customerID string, riskScore, clv float64) error
	GetPortfolioSummary() (*domain.PortfolioSummary, error)
	GetRiskDistribution() ([]domain.RiskDistributionBucket, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

const customerColumns = "id, full_name, email, phone, occupation, age_bracket, region, kyc_status, " +
	"account_balance, credit_score, annual_income, risk_score, customer_lifetime_value, " +
	"transaction_count, account_opened_at, created_at, updated_at"

func (r *customerRepository) GetCustomerByID(customerID string) (*domain.Customer, error) {
	customerSQL, customerArgs, err := squirrel.
		Select(customerColumns).
		From(customersTable).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(customerSQL, customerArgs...)

	customer, err := deserializeCustomerRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select(customerColumns).
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Region != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"region": filters.Region})
		}

		if filters.KYCStatus != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"kyc_status": *filters.KYCStatus})
		}

		if filters.MinRisk != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"risk_score": *filters.MinRisk})
		}

		switch filters.OrderBy {
		case "balance":
			queryBuilder = queryBuilder.OrderBy("account_balance DESC")
		case "risk":
			queryBuilder = queryBuilder.OrderBy("risk_score DESC")
		case "clv":
			queryBuilder = queryBuilder.OrderBy("customer_lifetime_value DESC")
		default:
			queryBuilder = queryBuilder.OrderBy("created_at ASC")
		}

		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
	} else {
		queryBuilder = queryBuilder.OrderBy("created_at ASC")
	}

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(customersSQL, customersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)

	for rows.Next() {
		customer, err := deserializeCustomerRows(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return customers, nil
}

// CreateCustomers insere os clientes em lote, atualizando os registros já existentes
func (r *customerRepository) CreateCustomers(customers []*domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(customersTable).
		Columns(
			"id", "full_name", "email", "phone", "occupation", "age_bracket", "region",
			"kyc_status", "account_balance", "credit_score", "annual_income", "risk_score",
			"customer_lifetime_value", "transaction_count", "account_opened_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, customer := range customers {
		query = query.Values(
			customer.ID,
			customer.FullName,
			customer.Email,
			customer.Phone,
			customer.Occupation,
			customer.AgeBracket,
			customer.Region,
			customer.KYCStatus,
			customer.AccountBalance,
			customer.CreditScore,
			customer.AnnualIncome,
			customer.RiskScore,
			customer.CustomerLifetimeValue,
			customer.TransactionCount,
			customer.AccountOpenedAt,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_balance = EXCLUDED.account_balance,
				credit_score = EXCLUDED.credit_score,
				risk_score = EXCLUDED.risk_score,
				customer_lifetime_value = EXCLUDED.customer_lifetime_value,
				transaction_count = EXCLUDED.transaction_count,
				updated_at = NOW()
		`)

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

func (r *customerRepository) UpdateCustomer(req *domain.UpdateCustomerRequest) error {
	if req.ID == "" {
		return fmt.Errorf("ID is required")
	}

	queryBuilder := squirrel.
		Update(customersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.FullName != nil {
		queryBuilder = queryBuilder.Set("full_name", *req.FullName)
	}

	if req.Email != nil {
		queryBuilder = queryBuilder.Set("email", *req.Email)
	}

	if req.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", *req.Phone)
	}

	if req.Occupation != nil {
		queryBuilder = queryBuilder.Set("occupation", *req.Occupation)
	}

	if req.KYCStatus != nil {
		queryBuilder = queryBuilder.Set("kyc_status", *req.KYCStatus)
	}

	if req.AccountBalance != nil {
		queryBuilder = queryBuilder.Set("account_balance", *req.AccountBalance)
	}

	if req.RiskScore != nil {
		queryBuilder = queryBuilder.Set("risk_score", *req.RiskScore)
	}

	if req.CustomerLifetimeValue != nil {
		queryBuilder = queryBuilder.Set("customer_lifetime_value", *req.CustomerLifetimeValue)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("customer not found")
	}

	return nil
}

// UpdateCustomerScores sobrescreve risco e CLV do cliente após uma análise de IA
func (r *customerRepository) UpdateCustomerScores(customerID string, riskScore, clv float64) error {
	sqlQuery, args, err := squirrel.
		Update(customersTable).
		Set("risk_score", riskScore).
		Set("customer_lifetime_value", clv).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetPortfolioSummary calcula os agregados do painel em uma única consulta
func (r *customerRepository) GetPortfolioSummary() (*domain.PortfolioSummary, error) {
	summary := &domain.PortfolioSummary{}

	err := r.conn.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(account_balance), 0),
			COALESCE(AVG(account_balance), 0),
			COALESCE(AVG(credit_score), 0),
			COALESCE(AVG(risk_score), 0),
			COALESCE(AVG(customer_lifetime_value), 0),
			COUNT(*) FILTER (WHERE risk_score > 0.7),
			COUNT(*) FILTER (WHERE kyc_status = 'pending')
		FROM customers
	`).Scan(
		&summary.TotalCustomers,
		&summary.TotalBalance,
		&summary.AvgBalance,
		&summary.AvgCreditScore,
		&summary.AvgRiskScore,
		&summary.AvgCLV,
		&summary.HighRiskCount,
		&summary.PendingKYCCount,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular resumo do portfólio: %w", err)
	}

	return summary, nil
}

// GetRiskDistribution conta os clientes por bucket de risco usando os mesmos
// limites de RiskLevelFromScore
func (r *customerRepository) GetRiskDistribution() ([]domain.RiskDistributionBucket, error) {
	rows, err := r.conn.Query(`
		SELECT
			CASE
				WHEN risk_score >= 0.85 THEN 'critical'
				WHEN risk_score > 0.7 THEN 'high'
				WHEN risk_score > 0.4 THEN 'medium'
				ELSE 'low'
			END AS level,
			COUNT(*)
		FROM customers
		GROUP BY level
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]domain.RiskDistributionBucket, 0, 4)
	for rows.Next() {
		var bucket domain.RiskDistributionBucket
		if err := rows.Scan(&bucket.Level, &bucket.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}

func deserializeCustomerRow(row *sql.Row) (*domain.Customer, error) {
	customer := &domain.Customer{}

	if err := row.Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&customer.Occupation,
		&customer.AgeBracket,
		&customer.Region,
		&customer.KYCStatus,
		&customer.AccountBalance,
		&customer.CreditScore,
		&customer.AnnualIncome,
		&customer.RiskScore,
		&customer.CustomerLifetimeValue,
		&customer.TransactionCount,
		&customer.AccountOpenedAt,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return customer, nil
}

func deserializeCustomerRows(rows *sql.Rows) (*domain.Customer, error) {
	customer := &domain.Customer{}

	if err := rows.Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&customer.Occupation,
		&customer.AgeBracket,
		&customer.Region,
		&customer.KYCStatus,
		&customer.AccountBalance,
		&customer.CreditScore,
		&customer.AnnualIncome,
		&customer.RiskScore,
		&customer.CustomerLifetimeValue,
		&customer.TransactionCount,
		&customer.AccountOpenedAt,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return customer, nil
}
