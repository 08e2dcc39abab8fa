package openaiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			BaseURL:        baseURL,
			APIKey:         "sk-test",
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 5,
		},
	}
}

func TestOpenAIClient_CreateChatCompletion(t *testing.T) {
	t.Run("Requisição bem-sucedida preenche modelo e envia autenticação", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req ChatCompletionRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			// Modelo vazio na requisição cai para o modelo da configuração
			assert.Equal(t, "gpt-4o-mini", req.Model)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"model": "gpt-4o-mini",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "olá"}}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 2, "total_tokens": 12}
			}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		resp, err := client.CreateChatCompletion(&ChatCompletionRequest{
			Messages: []ChatMessage{{Role: "user", Content: "oi"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, "olá", resp.Choices[0].Message.Content)
		assert.Equal(t, 12, resp.Usage.TotalTokens)
	})

	t.Run("Erro da API retorna mensagem do corpo", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		resp, err := client.CreateChatCompletion(&ChatCompletionRequest{
			Messages: []ChatMessage{{Role: "user", Content: "oi"}},
		})

		assert.Nil(t, resp)
		assert.ErrorContains(t, err, "429")
		assert.ErrorContains(t, err, "Rate limit reached")
	})

	t.Run("Resposta sem choices é rejeitada", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": "chatcmpl-2", "choices": []}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		resp, err := client.CreateChatCompletion(&ChatCompletionRequest{
			Messages: []ChatMessage{{Role: "user", Content: "oi"}},
		})

		assert.Nil(t, resp)
		assert.ErrorContains(t, err, "choices")
	})

	t.Run("Sem chave de API falha antes de chamar a rede", func(t *testing.T) {
		cfg := testConfig("http://localhost:0")
		cfg.OpenAI.APIKey = ""
		client := NewClient(cfg)

		resp, err := client.CreateChatCompletion(&ChatCompletionRequest{})
		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
