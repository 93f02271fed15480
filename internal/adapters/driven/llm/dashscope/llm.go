// Package dashscope provides an LLM service adapter using the Alibaba
// Cloud DashScope text-generation API.
package dashscope

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://dashscope.aliyuncs.com/api/v1"
	DefaultModel   = "qwen-turbo"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the DashScope LLM service.
type Config struct {
	// APIKey is the DashScope API key (required).
	APIKey string

	// BaseURL is the API base URL (default: DashScope public endpoint).
	BaseURL string

	// Model is the generation model to use (default: qwen-turbo).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// LLMService generates text using the DashScope API.
type LLMService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// chatRequest is the DashScope API request format.
type chatRequest struct {
	Model      string         `json:"model"`
	Input      chatInput      `json:"input"`
	Parameters chatParameters `json:"parameters"`
}

type chatInput struct {
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatParameters struct {
	Temperature  float64 `json:"temperature,omitempty"`
	TopP         float64 `json:"top_p,omitempty"`
	ResultFormat string  `json:"result_format,omitempty"`
}

// chatResponse is the DashScope API response format.
type chatResponse struct {
	Output struct {
		Text    string `json:"text"`
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	RequestID string `json:"request_id"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

// NewLLMService creates a new DashScope LLM service.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("dashscope: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &LLMService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// Chat sends a conversation and returns the assistant's reply.
func (s *LLMService) Chat(
	ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions,
) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("dashscope: no messages to send")
	}

	input := chatInput{Messages: make([]chatMessage, len(messages))}
	for i, msg := range messages {
		input.Messages[i] = chatMessage{Role: msg.Role, Content: msg.Content}
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model: s.model,
		Input: input,
		Parameters: chatParameters{
			Temperature:  opts.Temperature,
			TopP:         opts.TopP,
			ResultFormat: "message",
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/services/aigc/text-generation/generation",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		// Network failures and timeouts are worth retrying.
		return "", fmt.Errorf("send request: %w: %w", err, domain.ErrTransientUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Code != "" {
		return "", fmt.Errorf("dashscope error %s: %s", chatResp.Code, chatResp.Message)
	}

	if len(chatResp.Output.Choices) > 0 {
		return chatResp.Output.Choices[0].Message.Content, nil
	}
	if chatResp.Output.Text != "" {
		return chatResp.Output.Text, nil
	}
	return "", fmt.Errorf("dashscope: empty response")
}

// ModelName returns the name of the generation model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Close releases resources.
func (s *LLMService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// classifyStatus maps an HTTP error status to a terminal or retryable
// error. Rate limits and server errors are retryable; everything else
// (auth, invalid request) is terminal.
func classifyStatus(status int, body []byte) error {
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return fmt.Errorf("dashscope error (status %d): %s: %w",
			status, string(body), domain.ErrTransientUpstream)
	}
	return fmt.Errorf("dashscope error (status %d): %s", status, string(body))
}
