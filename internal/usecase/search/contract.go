package search

import (
	"context"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// ReviewScanner reads the full review log.
type ReviewScanner interface {
	ScanAll(ctx context.Context) ([]domain.Review, error)
}
