// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusVerified KYCStatus = "verified"
	KYCStatusRejected KYCStatus = "rejected"
)

type Customer struct {
	ID                    string    `json:"id"`
	FullName              string    `json:"full_name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	Occupation            string    `json:"occupation"`
	AgeBracket            string    `json:"age_bracket"`
	Region                string    `json:"region"`
	KYCStatus             KYCStatus `json:"kyc_status"`
	AccountBalance        float64   `json:"account_balance"`
	CreditScore           int       `json:"credit_score"`
	AnnualIncome          float64   `json:"annual_income"`
	RiskScore             float64   `json:"risk_score"` // sempre no intervalo [0,1]
	CustomerLifetimeValue float64   `json:"customer_lifetime_value"`
	TransactionCount      int       `json:"transaction_count"`
	AccountOpenedAt       time.Time `json:"account_opened_at"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// AccountAgeMonths retorna a idade da conta em meses completos,
// calculada em relação ao instante de referência informado
func (c *Customer) AccountAgeMonths(now time.Time) int {
	if c.AccountOpenedAt.After(now) {
		return 0
	}

	months := int(now.Sub(c.AccountOpenedAt).Hours() / (24 * 30))
	return months
}

type UpdateCustomerRequest struct {
	ID                    string   `json:"id"`
	FullName              *string  `json:"full_name"`
	Email                 *string  `json:"email"`
	Phone                 *string  `json:"phone"`
	Occupation            *string  `json:"occupation"`
	KYCStatus             *string  `json:"kyc_status"`
	AccountBalance        *float64 `json:"account_balance"`
	RiskScore             *float64 `json:"risk_score"`
	CustomerLifetimeValue *float64 `json:"customer_lifetime_value"`
}

// CustomerFilters define os filtros opcionais para listagem de clientes
type CustomerFilters struct {
	Region    string
	KYCStatus *KYCStatus
	MinRisk   *float64
	OrderBy   string
	Limit     int
}
