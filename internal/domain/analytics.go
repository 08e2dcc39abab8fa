package domain

import "time"

// PortfolioSummary agrega os indicadores exibidos no painel principal
type PortfolioSummary struct {
	TotalCustomers   int     `json:"total_customers"`
	TotalBalance     float64 `json:"total_balance"`
	AvgBalance       float64 `json:"avg_balance"`
	AvgCreditScore   float64 `json:"avg_credit_score"`
	AvgRiskScore     float64 `json:"avg_risk_score"`
	AvgCLV           float64 `json:"avg_clv"`
	HighRiskCount    int     `json:"high_risk_count"`
	PendingKYCCount  int     `json:"pending_kyc_count"`
	ActiveInsights   int     `json:"active_insights"`
	ActiveRiskAlerts int     `json:"active_risk_alerts"`
}

// RiskDistributionBucket representa uma faixa de risco e a quantidade de clientes nela
type RiskDistributionBucket struct {
	Level RiskLevel `json:"level"`
	Count int       `json:"count"`
}

// MonthlyVolume agrega o volume de transações de um mês (formato mm-yyyy, ex: 01-2024)
type MonthlyVolume struct {
	Month       string  `json:"month"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type AnalyticsResponse struct {
	Summary          *PortfolioSummary        `json:"summary"`
	RiskDistribution []RiskDistributionBucket `json:"risk_distribution"`
	MonthlyVolumes   []MonthlyVolume          `json:"monthly_volumes"`
	GeneratedAt      time.Time                `json:"generated_at"`
}
