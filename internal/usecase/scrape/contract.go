package scrape

import (
	"context"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// PageFetcher retrieves raw page markup for a URL.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

// Extractor parses page markup into a review candidate.
type Extractor interface {
	Extract(html, sourceURL string) (domain.ReviewCandidate, error)
}

// ReviewWriter appends reviews to the store.
type ReviewWriter interface {
	Insert(ctx context.Context, rev domain.Review) (string, error)
}
