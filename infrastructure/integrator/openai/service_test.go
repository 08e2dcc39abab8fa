package openai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
)

type fakeClient struct {
	lastRequest *openaiclient.ChatCompletionRequest
	content     string
	err         error
}

func (f *fakeClient) CreateChatCompletion(req *openaiclient.ChatCompletionRequest) (*openaiclient.ChatCompletionResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}

	response := &openaiclient.ChatCompletionResponse{}
	response.Choices = []struct {
		Index   int                      `json:"index"`
		Message openaiclient.ChatMessage `json:"message"`
	}{
		{Message: openaiclient.ChatMessage{Role: "assistant", Content: f.content}},
	}
	return response, nil
}

func newTestConfig(apiKey string) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			APIKey: apiKey,
			Model:  "gpt-4o-mini",
		},
	}
}

func TestOpenAIIntegrator_Enabled(t *testing.T) {
	assert.False(t, New(newTestConfig(""), nil).Enabled())
	assert.True(t, New(newTestConfig("sk-test"), nil).Enabled())
}

func TestOpenAIIntegrator_GenerateStructured(t *testing.T) {
	type parsed struct {
		Answer string `json:"answer"`
	}

	tests := []struct {
		name     string
		content  string
		err      error
		validate func(t *testing.T, out parsed, err error)
	}{
		{
			name:    "JSON limpo é decodificado",
			content: `{"answer":"ok"}`,
			validate: func(t *testing.T, out parsed, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ok", out.Answer)
			},
		},
		{
			name:    "Cercas de markdown são removidas antes do decode",
			content: "```json\n{\"answer\":\"cercado\"}\n```",
			validate: func(t *testing.T, out parsed, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "cercado", out.Answer)
			},
		},
		{
			name:    "Conteúdo que não é JSON retorna erro",
			content: "desculpe, não consigo responder em JSON",
			validate: func(t *testing.T, _ parsed, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Erro do cliente é propagado",
			err:  errors.New("status 429"),
			validate: func(t *testing.T, _ parsed, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{content: tt.content, err: tt.err}
			integrator := New(newTestConfig("sk-test"), client)

			var out parsed
			err := integrator.GenerateStructured(
				"sistema",
				"usuário",
				"test_schema",
				map[string]any{"type": "object"},
				&out,
			)

			tt.validate(t, out, err)

			if tt.err == nil {
				// O schema deve ir na requisição com response_format json_schema estrito
				if assert.NotNil(t, client.lastRequest.ResponseFormat) {
					assert.Equal(t, "json_schema", client.lastRequest.ResponseFormat.Type)
					assert.Equal(t, "test_schema", client.lastRequest.ResponseFormat.JSONSchema.Name)
					assert.True(t, client.lastRequest.ResponseFormat.JSONSchema.Strict)
				}
			}
		})
	}
}

func TestOpenAIIntegrator_GenerateText(t *testing.T) {
	client := &fakeClient{content: "  resposta com espaços  \n"}
	integrator := New(newTestConfig("sk-test"), client)

	text, err := integrator.GenerateText("sistema", "usuário")
	assert.NoError(t, err)
	assert.Equal(t, "resposta com espaços", text)
	assert.Nil(t, client.lastRequest.ResponseFormat)
	assert.Len(t, client.lastRequest.Messages, 2)
}

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Sem cercas", input: `{"a":1}`, expected: `{"a":1}`},
		{name: "Cerca com linguagem", input: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Cerca sem linguagem", input: "```\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Espaços ao redor", input: "  {\"a\":1}  ", expected: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripJSONFences(tt.input))
		})
	}
}
