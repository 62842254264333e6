package chat

import (
	"context"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// ReviewScanner reads the full review log for context matching.
type ReviewScanner interface {
	ScanAll(ctx context.Context) ([]domain.Review, error)
}
