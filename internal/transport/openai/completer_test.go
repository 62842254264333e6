package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

func sseChunk(content string) string {
	return fmt.Sprintf(
		`data: {"id":"1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n",
		content,
	)
}

func TestStreamCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, sseChunk("Hello"))
		_, _ = io.WriteString(w, sseChunk(" world"))
		_, _ = io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	c := NewCompleter(&Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})

	stream, err := c.StreamCompletion(context.Background(), []domain.Turn{
		{Role: domain.RoleSystem, Content: "instructions"},
		{Role: domain.RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("StreamCompletion failed: %v", err)
	}
	defer func() { _ = stream.Close() }()

	var got []string
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Recv failed: %v", err)
		}
		got = append(got, string(chunk))
	}

	if len(got) != 2 || got[0] != "Hello" || got[1] != " world" {
		t.Errorf("unexpected chunks: %q", got)
	}
}

func TestStreamCompletion_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"rate limited","type":"requests"}}`)
	}))
	defer server.Close()

	c := NewCompleter(&Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})

	_, err := c.StreamCompletion(context.Background(), []domain.Turn{
		{Role: domain.RoleUser, Content: "hi"},
	})
	if !errors.Is(err, domain.ErrCompletion) {
		t.Fatalf("expected ErrCompletion, got %v", err)
	}
}

func TestToChatMessages(t *testing.T) {
	msgs := toChatMessages([]domain.Turn{
		{Role: domain.RoleSystem, Content: "sys"},
		{Role: domain.RoleUser, Content: "q"},
		{Role: domain.RoleAssistant, Content: "a"},
	})
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[1].Role != "user" || msgs[2].Role != "assistant" {
		t.Errorf("unexpected roles: %+v", msgs)
	}
}
