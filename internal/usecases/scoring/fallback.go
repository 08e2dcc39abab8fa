// Package scoring implementa a avaliação de risco de clientes: via IA quando
// disponível, com fallback determinístico por regras
package scoring

import (
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

// Pesos do blend linear de risco
const (
	creditWeight   = 0.6
	balanceWeight  = 0.3
	activityWeight = 0.1
)

// FallbackRiskScore calcula a pontuação de risco por regras, sem ruído:
// blend linear de crédito, faixa de saldo e faixa de atividade.
// O resultado fica sempre em [0,1], mesmo para entradas extremas
func FallbackRiskScore(customer *domain.Customer) float64 {
	creditRisk := float64(850-customer.CreditScore) / 550.0

	score := creditWeight*creditRisk +
		balanceWeight*balanceTierPenalty(customer.AccountBalance) +
		activityWeight*activityTierPenalty(customer.TransactionCount)

	return clamp01(score)
}

// balanceTierPenalty penaliza saldos baixos por faixa
func balanceTierPenalty(balance float64) float64 {
	switch {
	case balance < 1_000:
		return 1.0
	case balance < 10_000:
		return 0.6
	case balance < 50_000:
		return 0.3
	default:
		return 0.1
	}
}

// activityTierPenalty penaliza contas pouco movimentadas por faixa
func activityTierPenalty(transactionCount int) float64 {
	switch {
	case transactionCount <= 0:
		return 1.0
	case transactionCount < 5:
		return 0.7
	case transactionCount < 20:
		return 0.4
	default:
		return 0.1
	}
}

// FallbackFactors descreve os fatores que dominaram a pontuação por regras
func FallbackFactors(customer *domain.Customer) []string {
	factors := make([]string, 0, 3)

	if customer.CreditScore < 600 {
		factors = append(factors, "Pontuação de crédito abaixo de 600")
	}

	if customer.AccountBalance < 1_000 {
		factors = append(factors, "Saldo em conta abaixo de R$ 1.000")
	}

	if customer.TransactionCount < 5 {
		factors = append(factors, "Conta com baixa movimentação")
	}

	if len(factors) == 0 {
		factors = append(factors, "Perfil dentro dos parâmetros normais da carteira")
	}

	return factors
}

// FallbackRecommendations sugere ações padrão por bucket de risco
func FallbackRecommendations(level domain.RiskLevel) []string {
	switch level {
	case domain.RiskLevelCritical:
		return []string{
			"Revisão manual imediata da conta",
			"Suspender ofertas de crédito até nova avaliação",
		}
	case domain.RiskLevelHigh:
		return []string{
			"Agendar revisão de crédito no próximo ciclo",
			"Monitorar movimentações atípicas",
		}
	case domain.RiskLevelMedium:
		return []string{
			"Manter monitoramento padrão",
		}
	default:
		return []string{
			"Cliente elegível para ofertas de relacionamento",
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
