// Package chat relays a conversation to the completion provider, grounded by
// coarse matches from the review log.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// Chunk is one forwarded piece of the completion stream. A non-nil Err is
// terminal: nothing follows it on the channel.
type Chunk struct {
	Content string
	Err     error
}

// Service matches stored reviews against the conversation and streams a
// grounded completion. Each invocation is independent; the only shared state
// is the review log.
type Service struct {
	reviews   ReviewScanner
	completer domain.Completer
	logger    *zap.Logger
}

// New creates a chat relay service.
func New(reviews ReviewScanner, completer domain.Completer, logger *zap.Logger) *Service {
	return &Service{reviews: reviews, completer: completer, logger: logger}
}

// Relay validates the conversation, assembles the augmented prompt, and
// starts the completion stream. The returned channel carries chunks in strict
// arrival order and is closed when the stream ends; an upstream failure
// mid-stream puts one terminal error chunk on the channel before closing.
func (s *Service) Relay(ctx context.Context, conv domain.Conversation) (<-chan Chunk, error) {
	if err := conv.Validate(); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan reviews: %w", err)
	}

	matches := matchReviews(reviews, conv.LastMessage())
	s.logger.Debug("reviews matched",
		zap.Int("scanned", len(reviews)),
		zap.Int("matched", len(matches)),
	)

	stream, err := s.completer.StreamCompletion(ctx, buildMessages(conv, matches))
	if err != nil {
		return nil, fmt.Errorf("start completion: %w", err)
	}

	out := make(chan Chunk)
	go s.forward(ctx, stream, out)
	return out, nil
}

// forward pulls chunks from the completion stream and emits them downstream
// one-for-one, unbuffered and in order. It stops pulling as soon as the
// consumer goes away (ctx cancelled) so an abandoned stream does not leak a
// read loop.
func (s *Service) forward(ctx context.Context, stream domain.CompletionStream, out chan<- Chunk) {
	defer close(out)
	defer func() { _ = stream.Close() }()

	var dec chunkDecoder
	for {
		raw, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if tail := dec.flush(); tail != "" {
					s.emit(ctx, out, Chunk{Content: tail})
				}
				return
			}
			s.emit(ctx, out, Chunk{Err: fmt.Errorf("%w: %w", domain.ErrCompletion, err)})
			return
		}

		text := dec.decode(raw)
		if text == "" {
			continue
		}
		if !s.emit(ctx, out, Chunk{Content: text}) {
			return
		}
	}
}

func (s *Service) emit(ctx context.Context, out chan<- Chunk, c Chunk) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case out <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// matchReviews applies four independent recall signals against the message:
// professor name, subject, literal stringified star rating, and full review
// text, each tested as case-insensitive substring containment in both
// directions. Any firing signal includes the review. This is deliberately
// permissive and prone to false positives and negatives; it is a recall
// heuristic, not a relevance score.
func matchReviews(reviews []domain.Review, message string) []domain.Review {
	msg := strings.ToLower(message)

	var matches []domain.Review
	for i := range reviews {
		r := &reviews[i]
		signals := []string{
			strings.ToLower(r.Professor()),
			strings.ToLower(r.Subject()),
			formatStars(r.Stars()),
			strings.ToLower(r.Text()),
		}
		for _, sig := range signals {
			if sig == "" {
				continue
			}
			if strings.Contains(msg, sig) || (msg != "" && strings.Contains(sig, msg)) {
				matches = append(matches, reviews[i])
				break
			}
		}
	}
	return matches
}
