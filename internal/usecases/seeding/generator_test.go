package seeding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerator_GenerateCustomers_CamposDentroDasFaixas(t *testing.T) {
	generator := NewGenerator(42, testNow)

	customers := generator.GenerateCustomers(500)
	require.Len(t, customers, 500)

	for _, customer := range customers {
		assert.NotEmpty(t, customer.ID)
		assert.NotEmpty(t, customer.FullName)
		assert.NotEmpty(t, customer.Occupation)
		assert.NotEmpty(t, customer.Region)

		assert.GreaterOrEqual(t, customer.CreditScore, 300)
		assert.LessOrEqual(t, customer.CreditScore, 850)

		assert.GreaterOrEqual(t, customer.RiskScore, 0.0)
		assert.LessOrEqual(t, customer.RiskScore, 1.0)

		assert.GreaterOrEqual(t, customer.AccountBalance, 100.0)
		assert.GreaterOrEqual(t, customer.CustomerLifetimeValue, 0.0)
		assert.Greater(t, customer.AnnualIncome, 0.0)

		assert.False(t, customer.AccountOpenedAt.After(testNow))
	}
}

func TestGenerator_SementeFixaReproduzAMesmaCarga(t *testing.T) {
	first := NewGenerator(7, testNow)
	second := NewGenerator(7, testNow)

	firstCustomers := first.GenerateCustomers(50)
	secondCustomers := second.GenerateCustomers(50)

	require.Equal(t, len(firstCustomers), len(secondCustomers))
	for i := range firstCustomers {
		assert.Equal(t, *firstCustomers[i], *secondCustomers[i])
	}

	firstTransactions := first.GenerateTransactions(firstCustomers, 20)
	secondTransactions := second.GenerateTransactions(secondCustomers, 20)
	require.Equal(t, len(firstTransactions), len(secondTransactions))
	for i := range firstTransactions {
		assert.Equal(t, *firstTransactions[i], *secondTransactions[i])
	}
}

func TestGenerator_SementesDiferentesProduzemCargasDiferentes(t *testing.T) {
	first := NewGenerator(1, testNow).GenerateCustomers(20)
	second := NewGenerator(2, testNow).GenerateCustomers(20)

	different := false
	for i := range first {
		if first[i].AnnualIncome != second[i].AnnualIncome {
			different = true
			break
		}
	}

	assert.True(t, different, "cargas com sementes diferentes não deveriam coincidir")
}

func TestGenerator_SementeZeroUsaORelogio(t *testing.T) {
	generator := NewGenerator(0, testNow)

	assert.Equal(t, testNow.UnixNano(), generator.Seed())
}

func TestGenerator_GenerateTransactions(t *testing.T) {
	generator := NewGenerator(99, testNow)

	customers := generator.GenerateCustomers(100)
	transactions := generator.GenerateTransactions(customers, 15)

	perCustomer := make(map[string]int)
	for _, transaction := range transactions {
		perCustomer[transaction.CustomerID]++

		assert.Greater(t, transaction.Amount, 0.0)
		assert.NotEmpty(t, transaction.Category)
		assert.False(t, transaction.OccurredAt.After(testNow))
	}

	for customerID, total := range perCustomer {
		assert.LessOrEqual(t, total, 15, "cliente %s excedeu o teto de transações", customerID)
	}
}

func TestGenerator_GenerateTransactions_TetoZero(t *testing.T) {
	generator := NewGenerator(3, testNow)

	customers := generator.GenerateCustomers(10)
	transactions := generator.GenerateTransactions(customers, 0)

	assert.Empty(t, transactions)
}

func TestGenerator_GenerateInteractions(t *testing.T) {
	generator := NewGenerator(11, testNow)

	customers := generator.GenerateCustomers(50)
	interactions := generator.GenerateInteractions(customers)

	for _, interaction := range interactions {
		assert.NotEmpty(t, interaction.CustomerID)
		assert.NotEmpty(t, interaction.Subject)
		assert.Contains(t, []string{"positive", "neutral", "negative"}, interaction.Sentiment)
		assert.False(t, interaction.OccurredAt.After(testNow))
	}
}
