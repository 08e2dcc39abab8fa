package scoring

const riskAssessmentSystemPrompt = "Você é um analista de risco bancário. " +
	"Avalie o risco do cliente recebido considerando crédito, saldo, renda e movimentação recente. " +
	"Responda apenas com o JSON pedido: risk_score em [0,1], risk_level em " +
	"(low, medium, high, critical), fatores observados e recomendações de ação."

var riskAssessmentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"risk_score":      map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"risk_level":      map[string]any{"type": "string", "enum": []string{"low", "medium", "high", "critical"}},
		"factors":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"recommendations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
	"required":             []string{"risk_score", "risk_level", "factors", "recommendations"},
	"additionalProperties": false,
}
