// Package scrape orchestrates fetch, extraction, and persistence for one URL.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// Service ingests one professor page per call: fetch, extract, insert.
type Service struct {
	fetcher PageFetcher
	extract Extractor
	reviews ReviewWriter
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a scrape service.
func New(fetcher PageFetcher, extract Extractor, reviews ReviewWriter, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		extract: extract,
		reviews: reviews,
		logger:  logger,
		now:     time.Now,
	}
}

// WithNow replaces the clock used for the capture timestamp.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Scrape validates the URL, fetches the page once, extracts a review
// candidate, and appends it to the store. Every successful call inserts a new
// record; byte-identical content is not deduplicated.
func (s *Service) Scrape(ctx context.Context, rawURL string) (domain.Review, error) {
	if err := validateURL(rawURL); err != nil {
		return domain.Review{}, err
	}

	html, err := s.fetcher.FetchPage(ctx, rawURL)
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetch page: %w", err)
	}

	cand, err := s.extract.Extract(html, rawURL)
	if err != nil {
		return domain.Review{}, err
	}

	rev, err := domain.NewReview(cand.Professor, cand.Subject, cand.Stars, cand.Review, s.now().UTC())
	if err != nil {
		return domain.Review{}, fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}

	id, err := s.reviews.Insert(ctx, rev)
	if err != nil {
		return domain.Review{}, fmt.Errorf("insert review: %w", err)
	}

	s.logger.Info("review scraped",
		zap.String("id", id),
		zap.String("professor", rev.Professor()),
		zap.String("subject", rev.Subject()),
		zap.Float64("stars", rev.Stars()),
	)

	return rev, nil
}

// validateURL requires a well-formed absolute URL before any network activity.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: malformed url: %w", domain.ErrInvalidInput, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute", domain.ErrInvalidInput)
	}
	return nil
}
