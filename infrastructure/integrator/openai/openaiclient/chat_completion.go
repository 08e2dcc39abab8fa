package openaiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat restringe a saída do modelo a um JSON Schema quando informado
type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

type JSONSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int         `json:"index"`
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// CreateChatCompletion faz uma única ida e volta ao endpoint de completions.
// Sem retry e sem backoff: quem chama decide o fallback
func (c *OpenAIClient) CreateChatCompletion(req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if c.config.OpenAI.APIKey == "" {
		return nil, errors.New("openai: api key não configurada")
	}

	if req.Model == "" {
		req.Model = c.config.OpenAI.Model
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "openai: erro ao serializar requisição")
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.OpenAI.BaseURL)

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "openai: erro ao ler resposta")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, errors.Errorf("openai: status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, errors.Errorf("openai: status %d", resp.StatusCode)
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, errors.New("openai: resposta sem choices")
	}

	return &response, nil
}
