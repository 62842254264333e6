package domain

import (
	"fmt"
	"time"
)

// MaxStars is the upper bound of the star rating scale.
const MaxStars = 5.0

// Review is one structured record derived from a scraped comment/rating pair
// (immutable value object).
type Review struct {
	professor  string
	subject    string
	stars      float64
	review     string
	capturedAt time.Time
}

// NewReview validates and creates a Review. All four content fields must be
// non-empty and the rating must be within [0, MaxStars].
func NewReview(professor, subject string, stars float64, review string, capturedAt time.Time) (Review, error) {
	if professor == "" {
		return Review{}, fmt.Errorf("professor name is required")
	}
	if subject == "" {
		return Review{}, fmt.Errorf("subject is required")
	}
	if stars < 0 || stars > MaxStars {
		return Review{}, fmt.Errorf("stars must be between 0 and %g, got %g", MaxStars, stars)
	}
	if review == "" {
		return Review{}, fmt.Errorf("review text is required")
	}

	return Review{
		professor:  professor,
		subject:    subject,
		stars:      stars,
		review:     review,
		capturedAt: capturedAt,
	}, nil
}

// ReconstructReview creates a Review without validation (storage hydration).
func ReconstructReview(professor, subject string, stars float64, review string, capturedAt time.Time) Review {
	return Review{
		professor:  professor,
		subject:    subject,
		stars:      stars,
		review:     review,
		capturedAt: capturedAt,
	}
}

// Professor returns the professor's display name.
func (r *Review) Professor() string { return r.professor }

// Subject returns the subject/department label.
func (r *Review) Subject() string { return r.subject }

// Stars returns the quality rating.
func (r *Review) Stars() float64 { return r.stars }

// Text returns the review comment text.
func (r *Review) Text() string { return r.review }

// CapturedAt returns the insert timestamp.
func (r *Review) CapturedAt() time.Time { return r.capturedAt }

// ReviewCandidate is an extracted review before the insert timestamp is
// assigned.
type ReviewCandidate struct {
	Professor string
	Subject   string
	Stars     float64
	Review    string
}
