package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// reviewsKey is the Redis list holding the append-only review log.
const reviewsKey = "ai-rating:reviews"

// store is the consumer interface for the review log (ISP).
type store interface {
	Append(ctx context.Context, key string, value []byte) error
	Range(ctx context.Context, key string) ([][]byte, error)
	Len(ctx context.Context, key string) (int64, error)
}

// Repo persists reviews as an append-only JSON list.
type Repo struct {
	store store
}

// New creates a review repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Insert appends a review to the log and returns its generated id. Every call
// writes a new record; there is no upsert or deduplication.
func (r *Repo) Insert(ctx context.Context, rev domain.Review) (string, error) {
	id := uuid.NewString()
	data, err := json.Marshal(toStored(id, &rev))
	if err != nil {
		return "", fmt.Errorf("marshal review: %w", err)
	}

	if err := r.store.Append(ctx, reviewsKey, data); err != nil {
		return "", fmt.Errorf("%w: append review: %w", domain.ErrStore, err)
	}
	return id, nil
}

// ScanAll returns every stored review in insertion order. Elements that fail
// to decode are skipped rather than failing the whole scan.
func (r *Repo) ScanAll(ctx context.Context) ([]domain.Review, error) {
	raw, err := r.store.Range(ctx, reviewsKey)
	if err != nil {
		return nil, fmt.Errorf("%w: scan reviews: %w", domain.ErrStore, err)
	}

	reviews := make([]domain.Review, 0, len(raw))
	for _, data := range raw {
		var s storedReview
		if err := json.Unmarshal(data, &s); err != nil {
			continue
		}
		reviews = append(reviews, s.toDomain())
	}
	return reviews, nil
}

// Count returns the number of stored reviews.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := r.store.Len(ctx, reviewsKey)
	if err != nil {
		return 0, fmt.Errorf("%w: count reviews: %w", domain.ErrStore, err)
	}
	return n, nil
}
