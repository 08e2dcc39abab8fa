// Package segmenting implementa a segmentação de clientes: por regras
// determinísticas (sempre disponível) e refinada por IA (melhor esforço)
package segmenting

import (
	"sort"
	"time"

	"github.com/vfg2006/bank-intelligence-api/internal/domain"
)

const (
	// Fração da carteira que compõe o segmento de alto valor
	highValueFraction = 0.2

	youngProfessionalMaxAccountMonths = 36
	youngProfessionalMinIncome        = 40_000.0
	youngProfessionalMaxIncome        = 100_000.0

	highRiskThreshold = 0.7
)

// RuleSegments produz os três segmentos fixos da segmentação por regras.
// Para entrada vazia retorna lista vazia. O segmento de alto valor sempre
// existe quando há clientes; os demais são omitidos quando não qualificam
// nenhum cliente
func RuleSegments(customers []*domain.Customer, now time.Time) []*domain.SegmentProfile {
	if len(customers) == 0 {
		return []*domain.SegmentProfile{}
	}

	segments := make([]*domain.SegmentProfile, 0, 3)

	segments = append(segments, highValueSegment(customers))

	if yp := youngProfessionalsSegment(customers, now); yp != nil {
		segments = append(segments, yp)
	}

	if hr := highRiskSegment(customers); hr != nil {
		segments = append(segments, hr)
	}

	return segments
}

// highValueSegment seleciona os ceil(20%) clientes de maior saldo.
// A ordenação é estável e decrescente: empates na fronteira do quantil
// preservam a ordem original da entrada
func highValueSegment(customers []*domain.Customer) *domain.SegmentProfile {
	sorted := make([]*domain.Customer, len(customers))
	copy(sorted, customers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AccountBalance > sorted[j].AccountBalance
	})

	size := ceilFraction(len(sorted), highValueFraction)
	members := sorted[:size]

	return buildProfile(
		domain.SegmentCodeHighValue,
		"Alto Valor",
		"Clientes no topo da carteira por saldo em conta",
		members,
	)
}

func youngProfessionalsSegment(customers []*domain.Customer, now time.Time) *domain.SegmentProfile {
	members := make([]*domain.Customer, 0)

	for _, customer := range customers {
		if customer.AccountAgeMonths(now) >= youngProfessionalMaxAccountMonths {
			continue
		}

		if customer.AnnualIncome < youngProfessionalMinIncome ||
			customer.AnnualIncome >= youngProfessionalMaxIncome {
			continue
		}

		members = append(members, customer)
	}

	if len(members) == 0 {
		return nil
	}

	return buildProfile(
		domain.SegmentCodeYoungProfessionals,
		"Jovens Profissionais",
		"Contas recentes com renda em faixa de crescimento",
		members,
	)
}

func highRiskSegment(customers []*domain.Customer) *domain.SegmentProfile {
	members := make([]*domain.Customer, 0)

	for _, customer := range customers {
		if customer.RiskScore > highRiskThreshold {
			members = append(members, customer)
		}
	}

	if len(members) == 0 {
		return nil
	}

	return buildProfile(
		domain.SegmentCodeHighRisk,
		"Alto Risco",
		"Clientes com pontuação de risco acima do limite de alerta",
		members,
	)
}

// buildProfile monta o perfil do segmento com as características médias dos membros
func buildProfile(code, name, description string, members []*domain.Customer) *domain.SegmentProfile {
	profile := &domain.SegmentProfile{
		Code:        code,
		Name:        name,
		Description: description,
		CustomerIDs: make([]string, 0, len(members)),
	}

	var sumBalance, sumIncome, sumRisk, sumCLV float64

	for _, member := range members {
		profile.CustomerIDs = append(profile.CustomerIDs, member.ID)
		sumBalance += member.AccountBalance
		sumIncome += member.AnnualIncome
		sumRisk += member.RiskScore
		sumCLV += member.CustomerLifetimeValue
	}

	n := float64(len(members))
	if n > 0 {
		profile.AvgBalance = sumBalance / n
		profile.AvgIncome = sumIncome / n
		profile.AvgRisk = sumRisk / n
		profile.AvgCLV = sumCLV / n
	}

	return profile
}

// ceilFraction calcula ceil(fraction × n) sem passar por float na fronteira
func ceilFraction(n int, fraction float64) int {
	size := int(float64(n) * fraction)
	if float64(size) < float64(n)*fraction {
		size++
	}

	if size < 1 {
		size = 1
	}

	if size > n {
		size = n
	}

	return size
}
