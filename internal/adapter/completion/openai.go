// Package completion adapts the remote chat-completion service to the
// domain.CompletionClient contract, classifying transport and HTTP
// failures into domain error kinds before any caller sees them.
package completion

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quizme/internal/config"
	"quizme/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements domain.CompletionClient against an
// OpenAI-compatible chat-completion endpoint. It holds only immutable
// configuration and is safe for concurrent use.
type OpenAIClient struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

// NewOpenAIClient creates a new OpenAIClient from the given configuration.
func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(apiCfg),
		cfg:    cfg,
	}
}

// Complete issues exactly one chat-completion request under the
// configured deadline and returns the text of the first choice.
// No internal retries are performed.
func (c *OpenAIClient) Complete(ctx context.Context, payload domain.PromptPayload) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.NewMissingCredentialError()
	}
	if !strings.HasPrefix(c.cfg.APIKey, "sk-") {
		return "", domain.NewInvalidCredentialError()
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: payload.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: payload.User,
			},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewRemoteFailureError(0, errors.New("completion returned no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyError turns transport-level errors into typed domain errors.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTimeoutError(err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}

	return domain.NewRemoteFailureError(0, err)
}

func classifyStatus(status int, err error) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.NewUnauthorizedError(err)
	case http.StatusTooManyRequests:
		return domain.NewRateLimitedError(err)
	case http.StatusPaymentRequired:
		return domain.NewQuotaExceededError(err)
	default:
		return domain.NewRemoteFailureError(status, err)
	}
}

// Static assertion to ensure OpenAIClient implements CompletionClient
var _ domain.CompletionClient = (*OpenAIClient)(nil)
