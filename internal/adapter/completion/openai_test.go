package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizme/internal/config"
	"quizme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "sk-test-key"

func testConfig(baseURL string) config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:      testAPIKey,
		BaseURL:     baseURL,
		Model:       "gpt-3.5-turbo",
		MaxTokens:   3000,
		Temperature: 0.7,
		Timeout:     5 * time.Second,
	}
}

func testPayload() domain.PromptPayload {
	return domain.PromptPayload{
		System: "You are an expert educator.",
		User:   "Generate a quiz.",
	}
}

// completionResponse builds an OpenAI-style success body.
func completionResponse(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	})
	return string(body)
}

func errorResponse(message string) string {
	return fmt.Sprintf(`{"error":{"message":%q,"type":"invalid_request_error"}}`, message)
}

func assertDomainCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected a domain error, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestCompleteMissingCredential(t *testing.T) {
	cfg := testConfig("")
	cfg.APIKey = ""
	client := NewOpenAIClient(cfg)

	_, err := client.Complete(context.Background(), testPayload())
	assertDomainCode(t, err, domain.CodeMissingCredential)
}

func TestCompleteInvalidCredentialShape(t *testing.T) {
	cfg := testConfig("")
	cfg.APIKey = "not-a-real-key"
	client := NewOpenAIClient(cfg)

	_, err := client.Complete(context.Background(), testPayload())
	assertDomainCode(t, err, domain.CodeInvalidCredential)
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotRequest struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float32 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionResponse(`{"title":"T","questions":[]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(testConfig(server.URL + "/v1"))
	raw, err := client.Complete(context.Background(), testPayload())
	require.NoError(t, err)

	assert.Equal(t, `{"title":"T","questions":[]}`, raw)
	assert.Equal(t, "Bearer "+testAPIKey, gotAuth)
	assert.Equal(t, "gpt-3.5-turbo", gotRequest.Model)
	assert.Equal(t, 3000, gotRequest.MaxTokens)
	assert.InDelta(t, 0.7, gotRequest.Temperature, 0.001)
	require.Len(t, gotRequest.Messages, 2)
	assert.Equal(t, "system", gotRequest.Messages[0].Role)
	assert.Equal(t, "You are an expert educator.", gotRequest.Messages[0].Content)
	assert.Equal(t, "user", gotRequest.Messages[1].Role)
	assert.Equal(t, "Generate a quiz.", gotRequest.Messages[1].Content)
}

func TestCompleteClassifiesHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   domain.ErrorCode
	}{
		{"unauthorized", http.StatusUnauthorized, domain.CodeUnauthorized},
		{"rate limited", http.StatusTooManyRequests, domain.CodeRateLimited},
		{"quota exceeded", http.StatusPaymentRequired, domain.CodeQuotaExceeded},
		{"server error", http.StatusInternalServerError, domain.CodeRemoteFailure},
		{"bad gateway", http.StatusBadGateway, domain.CodeRemoteFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, errorResponse("remote rejected the request"))
			}))
			defer server.Close()

			client := NewOpenAIClient(testConfig(server.URL + "/v1"))
			_, err := client.Complete(context.Background(), testPayload())
			assertDomainCode(t, err, tt.want)
		})
	}
}

func TestCompleteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionResponse("late"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL + "/v1")
	cfg.Timeout = 50 * time.Millisecond
	client := NewOpenAIClient(cfg)

	_, err := client.Complete(context.Background(), testPayload())
	assertDomainCode(t, err, domain.CodeTimeout)
}

func TestCompleteTransportFailure(t *testing.T) {
	// Point at a closed server so the TCP dial itself fails.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL + "/v1"
	server.Close()

	client := NewOpenAIClient(testConfig(baseURL))
	_, err := client.Complete(context.Background(), testPayload())
	assertDomainCode(t, err, domain.CodeRemoteFailure)
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`)
	}))
	defer server.Close()

	client := NewOpenAIClient(testConfig(server.URL + "/v1"))
	_, err := client.Complete(context.Background(), testPayload())
	assertDomainCode(t, err, domain.CodeRemoteFailure)
}
