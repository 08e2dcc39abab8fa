package insighting

const portfolioInsightsSystemPrompt = "Você é um analista de inteligência bancária. " +
	"A partir do resumo da carteira e da amostra de clientes, produza insights acionáveis " +
	"para o gestor: oportunidades, alertas de risco, retenção e tendências. " +
	"Responda apenas com o JSON pedido; confidence em [0,1]; type em " +
	"(opportunity, risk_alert, retention, product_offer, trend); priority em (low, medium, high)."

var insightsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"insights": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"opportunity", "risk_alert", "retention", "product_offer", "trend"},
					},
					"priority": map[string]any{
						"type": "string",
						"enum": []string{"low", "medium", "high"},
					},
					"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				},
				"required":             []string{"title", "description", "type", "priority", "confidence"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"insights"},
	"additionalProperties": false,
}

const productRecommendationSystemPrompt = "Você é um especialista em produtos bancários. " +
	"A partir do perfil do cliente e das transações recentes, recomende produtos adequados " +
	"(cartão, crédito, investimento, seguro). Responda apenas com o JSON pedido; " +
	"confidence em [0,1]; reason em uma frase curta."

var recommendationsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"recommendations": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product":    map[string]any{"type": "string"},
					"reason":     map[string]any{"type": "string"},
					"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				},
				"required":             []string{"product", "reason", "confidence"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"recommendations"},
	"additionalProperties": false,
}
