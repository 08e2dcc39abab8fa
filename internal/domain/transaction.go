package domain

import "time"

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeTransfer   TransactionType = "transfer"
)

type Transaction struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Type       TransactionType `json:"type"`
	Amount     float64         `json:"amount"`
	Category   string          `json:"category"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TransactionFilters define os filtros opcionais para listagem de transações
type TransactionFilters struct {
	CustomerID string
	Type       *TransactionType
	Since      *time.Time
	Limit      int
}
