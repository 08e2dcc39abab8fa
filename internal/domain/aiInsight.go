package domain

import "time"

type InsightType string

const (
	InsightTypeOpportunity    InsightType = "opportunity"
	InsightTypeRiskAlert      InsightType = "risk_alert"
	InsightTypeRetention      InsightType = "retention"
	InsightTypeProductOffer   InsightType = "product_offer"
	InsightTypeTrend          InsightType = "trend"
)

type InsightPriority string

const (
	InsightPriorityLow    InsightPriority = "low"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityHigh   InsightPriority = "high"
)

type InsightStatus string

const (
	InsightStatusNew          InsightStatus = "new"
	InsightStatusAcknowledged InsightStatus = "acknowledged"
	InsightStatusDismissed    InsightStatus = "dismissed"
)

// AIInsight representa um insight gerado pelo provedor de IA (ou descartado
// silenciosamente quando a geração falha — nunca bloqueia o dashboard)
type AIInsight struct {
	ID          string          `json:"id"`
	CustomerID  *string         `json:"customer_id"` // nulo para insights de portfólio
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        InsightType     `json:"type"`
	Priority    InsightPriority `json:"priority"`
	Confidence  float64         `json:"confidence"` // intervalo [0,1]
	Status      InsightStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type UpdateInsightStatusRequest struct {
	ID     string        `json:"id"`
	Status InsightStatus `json:"status"`
}

type InsightFilters struct {
	CustomerID string
	Status     *InsightStatus
	Type       *InsightType
	Limit      int
}
