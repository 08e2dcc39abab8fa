package openaiclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/bank-intelligence-api/internal/config"
)

type Client interface {
	CreateChatCompletion(req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
