package review

import (
	"time"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// storedReview is the JSON shape of one list element. Field names follow the
// original reviews collection layout.
type storedReview struct {
	ID        string    `json:"id"`
	Professor string    `json:"professor"`
	Subject   string    `json:"subject"`
	Stars     float64   `json:"stars"`
	Review    string    `json:"review"`
	Timestamp time.Time `json:"timestamp"`
}

func toStored(id string, r *domain.Review) storedReview {
	return storedReview{
		ID:        id,
		Professor: r.Professor(),
		Subject:   r.Subject(),
		Stars:     r.Stars(),
		Review:    r.Text(),
		Timestamp: r.CapturedAt(),
	}
}

func (s *storedReview) toDomain() domain.Review {
	return domain.ReconstructReview(s.Professor, s.Subject, s.Stars, s.Review, s.Timestamp)
}
