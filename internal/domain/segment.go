package domain

import "time"

// Códigos dos segmentos fixos produzidos pela segmentação por regras
const (
	SegmentCodeHighValue          = "high_value"
	SegmentCodeYoungProfessionals = "young_professionals"
	SegmentCodeHighRisk           = "high_risk"
)

type CustomerSegment struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Source      string    `json:"source"` // "rules" ou "ai"
	MemberCount int       `json:"member_count"`
	AvgBalance  float64   `json:"avg_balance"`
	AvgIncome   float64   `json:"avg_income"`
	AvgRisk     float64   `json:"avg_risk"`
	AvgCLV      float64   `json:"avg_clv"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SegmentAssignment struct {
	ID         string    `json:"id"`
	SegmentID  string    `json:"segment_id"`
	CustomerID string    `json:"customer_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// SegmentProfile é o resultado em memória da segmentação antes da persistência:
// identificação do segmento, membros e características médias
type SegmentProfile struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CustomerIDs []string `json:"customer_ids"`
	AvgBalance  float64  `json:"avg_balance"`
	AvgIncome   float64  `json:"avg_income"`
	AvgRisk     float64  `json:"avg_risk"`
	AvgCLV      float64  `json:"avg_clv"`
}

type SegmentationResponse struct {
	Segments    []*SegmentProfile `json:"segments"`
	Source      string            `json:"source"`
	GeneratedAt time.Time         `json:"generated_at"`
}
