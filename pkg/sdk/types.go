package airating

import (
	"time"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// Review is one stored professor review.
type Review struct {
	Professor  string
	Subject    string
	Stars      float64
	Review     string
	CapturedAt time.Time
}

// Criteria filters the review log. Zero-value fields skip their filter
// stage; filters apply in fixed order: subject, minimum rating, keywords.
type Criteria struct {
	Subject   string
	MinRating *float64
	Keywords  []string
}

// Turn is one conversation message. Role is "user" or "assistant"; the last
// turn must come from the user.
type Turn struct {
	Role    string
	Content string
}

// Chunk is one streamed piece of a chat completion. A non-nil Err is
// terminal: the channel closes after it.
type Chunk struct {
	Content string
	Err     error
}

func reviewFromDomain(r domain.Review) Review {
	return Review{
		Professor:  r.Professor(),
		Subject:    r.Subject(),
		Stars:      r.Stars(),
		Review:     r.Text(),
		CapturedAt: r.CapturedAt(),
	}
}

func conversationToDomain(turns []Turn) domain.Conversation {
	conv := make(domain.Conversation, len(turns))
	for i, t := range turns {
		conv[i] = domain.Turn{Role: t.Role, Content: t.Content}
	}
	return conv
}
