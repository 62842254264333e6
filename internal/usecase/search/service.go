// Package search filters the review log by structured criteria.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// Service applies structured search criteria over a full store scan.
type Service struct {
	reviews ReviewScanner
}

// New creates a search service.
func New(reviews ReviewScanner) *Service {
	return &Service{reviews: reviews}
}

// Search scans every stored review and applies the filter chain in fixed
// order: subject equality, minimum rating, keyword OR-match. Absent criteria
// skip their stage. Results keep the store's scan order; no ranking is
// applied. An empty result is a normal outcome.
func (s *Service) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Review, error) {
	reviews, err := s.reviews.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan reviews: %w", err)
	}

	if criteria.HasSubject() {
		reviews = filterReviews(reviews, func(r *domain.Review) bool {
			return strings.EqualFold(r.Subject(), criteria.Subject)
		})
	}

	if criteria.HasMinRating() {
		reviews = filterReviews(reviews, func(r *domain.Review) bool {
			return r.Stars() >= *criteria.MinRating
		})
	}

	if criteria.HasKeywords() {
		reviews = filterReviews(reviews, func(r *domain.Review) bool {
			return matchesAnyKeyword(r.Text(), criteria.Keywords)
		})
	}

	return reviews, nil
}

func filterReviews(reviews []domain.Review, keep func(*domain.Review) bool) []domain.Review {
	out := reviews[:0]
	for i := range reviews {
		if keep(&reviews[i]) {
			out = append(out, reviews[i])
		}
	}
	return out
}

// matchesAnyKeyword reports whether any keyword appears in the review text,
// case-insensitively (OR semantics).
func matchesAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
