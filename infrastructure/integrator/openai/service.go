package openai

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/pkg/utils"
)

// AIProvider define as duas operações oferecidas pelo provedor de IA:
// geração de texto livre e geração estruturada restrita por JSON Schema
type AIProvider interface {
	Enabled() bool
	GenerateText(systemPrompt, userPrompt string) (string, error)
	GenerateStructured(systemPrompt, userPrompt, schemaName string, schema map[string]any, out any) error
}

type OpenAIIntegrator struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) *OpenAIIntegrator {
	return &OpenAIIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Enabled indica se o provedor está configurado. Quando falso, os casos de uso
// pulam a chamada remota e vão direto para o fallback por regras
func (s *OpenAIIntegrator) Enabled() bool {
	return s.cfg.OpenAI.APIKey != ""
}

func (s *OpenAIIntegrator) GenerateText(systemPrompt, userPrompt string) (string, error) {
	resp, err := s.Client.CreateChatCompletion(&openaiclient.ChatCompletionRequest{
		Messages: []openaiclient.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   800,
		Temperature: 0.4,
	})
	if err != nil {
		logrus.WithError(err).Error("openai: falha na geração de texto")
		return "", err
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateStructured pede ao modelo uma resposta restrita ao schema informado e
// decodifica o JSON retornado em out
func (s *OpenAIIntegrator) GenerateStructured(
	systemPrompt, userPrompt, schemaName string,
	schema map[string]any,
	out any,
) error {
	resp, err := s.Client.CreateChatCompletion(&openaiclient.ChatCompletionRequest{
		Messages: []openaiclient.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   1200,
		Temperature: 0.2,
		ResponseFormat: &openaiclient.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &openaiclient.JSONSchema{
				Name:   schemaName,
				Strict: true,
				Schema: schema,
			},
		},
	})
	if err != nil {
		logrus.WithError(err).Error("openai: falha na geração estruturada")
		return err
	}

	content := stripJSONFences(resp.Choices[0].Message.Content)

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("openai: resposta estruturada %s: %s", schemaName, utils.PrettyJson([]byte(content)))
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return errors.Wrap(err, "openai: erro ao decodificar resposta estruturada")
	}

	return nil
}

// stripJSONFences remove cercas de markdown que alguns modelos insistem em
// devolver mesmo com response_format ativo
func stripJSONFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
