package review

import (
	"context"
	"testing"
	"time"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	appendFn func(ctx context.Context, key string, value []byte) error
	rangeFn  func(ctx context.Context, key string) ([][]byte, error)
	lenFn    func(ctx context.Context, key string) (int64, error)
}

func (m *mockStore) Append(ctx context.Context, key string, value []byte) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, key, value)
	}
	return nil
}

func (m *mockStore) Range(ctx context.Context, key string) ([][]byte, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) Len(ctx context.Context, key string) (int64, error) {
	if m.lenFn != nil {
		return m.lenFn(ctx, key)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testReview(t *testing.T) domain.Review {
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
