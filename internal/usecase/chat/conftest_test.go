package chat

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

type mockScanner struct {
	reviews []domain.Review
	err     error
}

func (m *mockScanner) ScanAll(_ context.Context) ([]domain.Review, error) {
	return m.reviews, m.err
}

// mockStream replays scripted chunks, then the terminal error (io.EOF or a
// failure). recvAfterClose counts pulls made after Close, which must be zero
// when the consumer disappears.
type mockStream struct {
	chunks   [][]byte
	terminal error
	pos      int
	closed   bool
	recvs    int
}

func (m *mockStream) Recv() ([]byte, error) {
	m.recvs++
	if m.pos >= len(m.chunks) {
		if m.terminal != nil {
			return nil, m.terminal
		}
		return nil, io.EOF
	}
	c := m.chunks[m.pos]
	m.pos++
	return c, nil
}

func (m *mockStream) Close() error {
	m.closed = true
	return nil
}

type mockCompleter struct {
	stream  *mockStream
	err     error
	gotMsgs []domain.Turn
	called  bool
}

func (m *mockCompleter) StreamCompletion(_ context.Context, msgs []domain.Turn) (domain.CompletionStream, error) {
	m.called = true
	m.gotMsgs = msgs
	if m.err != nil {
		return nil, m.err
	}
	return m.stream, nil
}

func smithReview(t *testing.T) domain.Review {
	t.Helper()
	r, err := domain.NewReview(
		"Dr. Smith", "Biology", 4.5, "Great lecturer",
		time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}
	return r
}

func userConv(content string) domain.Conversation {
	return domain.Conversation{{Role: domain.RoleUser, Content: content}}
}

// collect drains the chunk channel with a deadline so a broken relay cannot
// hang the test suite.
func collect(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, c)
		case <-timeout:
			t.Fatal("timed out draining chunk channel")
		}
	}
}
