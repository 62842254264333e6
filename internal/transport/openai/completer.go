// Package openai adapts the OpenAI-compatible chat completion API to the
// domain completion contracts.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// Compile-time check: Completer implements domain.Completer.
var _ domain.Completer = (*Completer)(nil)

// Completer streams chat completions from an OpenAI-compatible API.
type Completer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the completion provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewCompleter creates an OpenAI-compatible completion provider.
func NewCompleter(cfg *Config) *Completer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Completer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// StreamCompletion implements domain.Completer. The returned stream yields
// raw delta bytes in arrival order.
func (c *Completer) StreamCompletion(ctx context.Context, msgs []domain.Turn) (domain.CompletionStream, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toChatMessages(msgs),
		Stream:   true,
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, parseAPIError(err)
	}

	return &completionStream{inner: stream}, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Completer) HealthCheck(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// completionStream adapts the SDK stream to domain.CompletionStream.
type completionStream struct {
	inner *openai.ChatCompletionStream
}

// Recv returns the next delta's bytes. io.EOF signals a clean end of stream;
// any other error is terminal.
func (s *completionStream) Recv() ([]byte, error) {
	resp, err := s.inner.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}
	return []byte(resp.Choices[0].Delta.Content), nil
}

func (s *completionStream) Close() error {
	return s.inner.Close()
}

func toChatMessages(msgs []domain.Turn) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		out[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return out
}

// parseAPIError extracts a human-readable error from the API response. All
// errors are wrapped with domain.ErrCompletion.
func parseAPIError(err error) error {
	wrap := domain.ErrCompletion

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("completion API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("completion API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("completion request failed: %w: %w", wrap, err)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
