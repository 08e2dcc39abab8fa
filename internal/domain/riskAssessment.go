package domain

import "time"

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type RiskAssessmentStatus string

const (
	RiskAssessmentStatusActive    RiskAssessmentStatus = "active"
	RiskAssessmentStatusResolved  RiskAssessmentStatus = "resolved"
	RiskAssessmentStatusDismissed RiskAssessmentStatus = "dismissed"
)

type RiskAssessment struct {
	ID              string               `json:"id"`
	CustomerID      string               `json:"customer_id"`
	RiskScore       float64              `json:"risk_score"`
	RiskLevel       RiskLevel            `json:"risk_level"`
	Factors         []string             `json:"factors"`         // serializado como JSON no banco
	Recommendations []string             `json:"recommendations"` // serializado como JSON no banco
	Status          RiskAssessmentStatus `json:"status"`
	Source          string               `json:"source"` // "ai" ou "rules"
	ExpiresAt       time.Time            `json:"expires_at"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// RiskLevelFromScore mapeia uma pontuação [0,1] para o bucket de risco correspondente
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score >= 0.85:
		return RiskLevelCritical
	case score > 0.7:
		return RiskLevelHigh
	case score > 0.4:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

type UpdateRiskAssessmentStatusRequest struct {
	ID     string               `json:"id"`
	Status RiskAssessmentStatus `json:"status"`
}
