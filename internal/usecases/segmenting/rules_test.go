package segmenting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

var rulesNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newCustomer(id string, balance float64) *domain.Customer {
	return &domain.Customer{
		ID:              id,
		AccountBalance:  balance,
		AnnualIncome:    50_000,
		RiskScore:       0.2,
		AccountOpenedAt: rulesNow.AddDate(-5, 0, 0),
	}
}

func TestRuleSegments_EntradaVaziaRetornaListaVazia(t *testing.T) {
	segments := RuleSegments([]*domain.Customer{}, rulesNow)

	require.NotNil(t, segments)
	assert.Empty(t, segments)
}

func TestRuleSegments_AltoValorSempreExisteParaEntradaNaoVazia(t *testing.T) {
	segments := RuleSegments([]*domain.Customer{newCustomer("C1", 50)}, rulesNow)

	require.Len(t, segments, 1)
	assert.Equal(t, domain.SegmentCodeHighValue, segments[0].Code)
	assert.Equal(t, []string{"C1"}, segments[0].CustomerIDs)
}

func TestRuleSegments_AltoValorTamanhoCeil20PorCento(t *testing.T) {
	tests := []struct {
		customers int
		expected  int
	}{
		{1, 1},
		{2, 1},
		{4, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
		{100, 20},
		{101, 21},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d clientes", tt.customers), func(t *testing.T) {
			customers := make([]*domain.Customer, 0, tt.customers)
			for i := 0; i < tt.customers; i++ {
				customers = append(customers, newCustomer(fmt.Sprintf("C%03d", i), float64(i)))
			}

			segments := RuleSegments(customers, rulesNow)

			require.NotEmpty(t, segments)
			assert.Len(t, segments[0].CustomerIDs, tt.expected)
		})
	}
}

func TestRuleSegments_AltoValorSelecionaOsMaioresSaldos(t *testing.T) {
	customers := []*domain.Customer{
		newCustomer("C1", 100),
		newCustomer("C2", 9_000),
		newCustomer("C3", 500),
		newCustomer("C4", 70_000),
		newCustomer("C5", 2_000),
		newCustomer("C6", 12_000),
		newCustomer("C7", 800),
		newCustomer("C8", 45_000),
		newCustomer("C9", 300),
		newCustomer("C10", 1_500),
	}

	segments := RuleSegments(customers, rulesNow)

	require.NotEmpty(t, segments)
	highValue := segments[0]

	// ceil(0.2 × 10) = 2: os dois maiores saldos, em ordem decrescente
	assert.Equal(t, []string{"C4", "C8"}, highValue.CustomerIDs)
	assert.InDelta(t, (70_000.0+45_000.0)/2, highValue.AvgBalance, 0.001)
}

func TestRuleSegments_EmpateNaFronteiraPreservaOrdemOriginal(t *testing.T) {
	// três clientes com o mesmo saldo: o primeiro da entrada fica com a vaga
	customers := []*domain.Customer{
		newCustomer("C1", 1_000),
		newCustomer("C2", 1_000),
		newCustomer("C3", 1_000),
		newCustomer("C4", 100),
		newCustomer("C5", 100),
		newCustomer("C6", 100),
	}

	segments := RuleSegments(customers, rulesNow)

	require.NotEmpty(t, segments)
	// ceil(0.2 × 6) = 2
	assert.Equal(t, []string{"C1", "C2"}, segments[0].CustomerIDs)
}

func TestRuleSegments_JovensProfissionais(t *testing.T) {
	qualifying := &domain.Customer{
		ID:              "YP1",
		AccountBalance:  5_000,
		AnnualIncome:    60_000,
		AccountOpenedAt: rulesNow.AddDate(0, -12, 0),
	}

	tests := []struct {
		name     string
		customer *domain.Customer
		expected bool
	}{
		{
			name:     "conta recente com renda na faixa qualifica",
			customer: qualifying,
			expected: true,
		},
		{
			name: "conta com 36 meses não qualifica",
			customer: &domain.Customer{
				ID:              "YP2",
				AnnualIncome:    60_000,
				AccountOpenedAt: rulesNow.AddDate(0, -36, 0),
			},
			expected: false,
		},
		{
			name: "renda exatamente 40000 qualifica",
			customer: &domain.Customer{
				ID:              "YP3",
				AnnualIncome:    40_000,
				AccountOpenedAt: rulesNow.AddDate(0, -12, 0),
			},
			expected: true,
		},
		{
			name: "renda exatamente 100000 não qualifica",
			customer: &domain.Customer{
				ID:              "YP4",
				AnnualIncome:    100_000,
				AccountOpenedAt: rulesNow.AddDate(0, -12, 0),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := RuleSegments([]*domain.Customer{tt.customer}, rulesNow)

			found := false
			for _, segment := range segments {
				if segment.Code == domain.SegmentCodeYoungProfessionals {
					found = true
					assert.Equal(t, []string{tt.customer.ID}, segment.CustomerIDs)
				}
			}

			assert.Equal(t, tt.expected, found)
		})
	}
}

func TestRuleSegments_AltoRiscoAcimaDoLimite(t *testing.T) {
	atThreshold := newCustomer("R1", 1_000)
	atThreshold.RiskScore = 0.7

	aboveThreshold := newCustomer("R2", 1_000)
	aboveThreshold.RiskScore = 0.71

	segments := RuleSegments([]*domain.Customer{atThreshold, aboveThreshold}, rulesNow)

	var highRisk *domain.SegmentProfile
	for _, segment := range segments {
		if segment.Code == domain.SegmentCodeHighRisk {
			highRisk = segment
		}
	}

	// 0.7 é exclusivo: apenas R2 qualifica
	require.NotNil(t, highRisk)
	assert.Equal(t, []string{"R2"}, highRisk.CustomerIDs)
}

func TestRuleSegments_SegmentosVaziosSaoOmitidos(t *testing.T) {
	// cliente antigo, renda fora da faixa, risco baixo: só alto valor existe
	segments := RuleSegments([]*domain.Customer{
		{
			ID:              "C1",
			AccountBalance:  10_000,
			AnnualIncome:    200_000,
			RiskScore:       0.1,
			AccountOpenedAt: rulesNow.AddDate(-10, 0, 0),
		},
	}, rulesNow)

	require.Len(t, segments, 1)
	assert.Equal(t, domain.SegmentCodeHighValue, segments[0].Code)
}

func TestCeilFraction(t *testing.T) {
	assert.Equal(t, 1, ceilFraction(1, 0.2))
	assert.Equal(t, 1, ceilFraction(5, 0.2))
	assert.Equal(t, 2, ceilFraction(6, 0.2))
	assert.Equal(t, 20, ceilFraction(100, 0.2))
	assert.Equal(t, 3, ceilFraction(15, 0.2))
}
