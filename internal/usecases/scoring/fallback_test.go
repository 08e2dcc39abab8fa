package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

func TestFallbackRiskScore_SempreEntreZeroEUm(t *testing.T) {
	tests := []struct {
		name     string
		customer *domain.Customer
	}{
		{"cliente sem nada preenchido", &domain.Customer{}},
		{"saldo negativo", &domain.Customer{CreditScore: 600, AccountBalance: -5_000}},
		{"crédito acima do teto", &domain.Customer{CreditScore: 2_000, AccountBalance: 100_000, TransactionCount: 50}},
		{"crédito abaixo do piso", &domain.Customer{CreditScore: -100}},
		{"renda extrema", &domain.Customer{CreditScore: 850, AccountBalance: 1e12, TransactionCount: 10_000, AnnualIncome: 1e9}},
		{"movimentação negativa", &domain.Customer{CreditScore: 700, AccountBalance: 500, TransactionCount: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FallbackRiskScore(tt.customer)

			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestFallbackRiskScore_PerfilBomTemRiscoBaixo(t *testing.T) {
	customer := &domain.Customer{
		CreditScore:      820,
		AccountBalance:   120_000,
		TransactionCount: 40,
	}

	score := FallbackRiskScore(customer)

	// 0.6×(30/550) + 0.3×0.1 + 0.1×0.1 ≈ 0.0727
	assert.InDelta(t, 0.0727, score, 0.001)
	assert.Equal(t, domain.RiskLevelLow, domain.RiskLevelFromScore(score))
}

func TestFallbackRiskScore_PerfilRuimTemRiscoAlto(t *testing.T) {
	customer := &domain.Customer{
		CreditScore:      320,
		AccountBalance:   200,
		TransactionCount: 0,
	}

	score := FallbackRiskScore(customer)

	// 0.6×(530/550) + 0.3×1.0 + 0.1×1.0 ≈ 0.978
	assert.InDelta(t, 0.978, score, 0.001)
	assert.Equal(t, domain.RiskLevelCritical, domain.RiskLevelFromScore(score))
}

func TestFallbackFactors(t *testing.T) {
	t.Run("perfil com todos os fatores de atenção", func(t *testing.T) {
		factors := FallbackFactors(&domain.Customer{
			CreditScore:      500,
			AccountBalance:   200,
			TransactionCount: 1,
		})

		assert.Len(t, factors, 3)
	})

	t.Run("perfil saudável retorna fator padrão", func(t *testing.T) {
		factors := FallbackFactors(&domain.Customer{
			CreditScore:      750,
			AccountBalance:   50_000,
			TransactionCount: 30,
		})

		assert.Len(t, factors, 1)
	})
}

func TestFallbackRecommendations_SempreRetornaAcoes(t *testing.T) {
	levels := []domain.RiskLevel{
		domain.RiskLevelLow,
		domain.RiskLevelMedium,
		domain.RiskLevelHigh,
		domain.RiskLevelCritical,
	}

	for _, level := range levels {
		assert.NotEmpty(t, FallbackRecommendations(level))
	}
}

func TestRiskLevelFromScore(t *testing.T) {
	assert.Equal(t, domain.RiskLevelLow, domain.RiskLevelFromScore(0.0))
	assert.Equal(t, domain.RiskLevelLow, domain.RiskLevelFromScore(0.4))
	assert.Equal(t, domain.RiskLevelMedium, domain.RiskLevelFromScore(0.41))
	assert.Equal(t, domain.RiskLevelMedium, domain.RiskLevelFromScore(0.7))
	assert.Equal(t, domain.RiskLevelHigh, domain.RiskLevelFromScore(0.71))
	assert.Equal(t, domain.RiskLevelHigh, domain.RiskLevelFromScore(0.84))
	assert.Equal(t, domain.RiskLevelCritical, domain.RiskLevelFromScore(0.85))
	assert.Equal(t, domain.RiskLevelCritical, domain.RiskLevelFromScore(1.0))
}
