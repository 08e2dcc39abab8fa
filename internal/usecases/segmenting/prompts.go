package segmenting

const segmentationSystemPrompt = "Você é um analista de carteira bancária. " +
	"Agrupe os clientes recebidos em 3 a 5 segmentos acionáveis com base em saldo, renda, " +
	"risco e atividade. Cada cliente pode aparecer em mais de um segmento. " +
	"Responda apenas com o JSON pedido, usando somente IDs de clientes presentes na entrada."

var segmentationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"segments": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code":         map[string]any{"type": "string"},
					"name":         map[string]any{"type": "string"},
					"description":  map[string]any{"type": "string"},
					"customer_ids": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required":             []string{"code", "name", "description", "customer_ids"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"segments"},
	"additionalProperties": false,
}
