package chi

import (
	"context"
	"io"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
	chatuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/chat"
	healthuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/health"
	scrapeuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/scrape"
	searchuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/search"
)

type mockFetcher struct {
	html string
	err  error
}

func (f *mockFetcher) FetchPage(_ context.Context, _ string) (string, error) {
	return f.html, f.err
}

type mockExtractor struct {
	cand domain.ReviewCandidate
	err  error
}

func (e *mockExtractor) Extract(_, _ string) (domain.ReviewCandidate, error) {
	return e.cand, e.err
}

type mockWriter struct {
	id  string
	err error
}

func (w *mockWriter) Insert(_ context.Context, _ domain.Review) (string, error) {
	return w.id, w.err
}

type mockScanner struct {
	reviews []domain.Review
	err     error
}

func (s *mockScanner) ScanAll(_ context.Context) ([]domain.Review, error) {
	return s.reviews, s.err
}

type mockStream struct {
	chunks [][]byte
	err    error
	pos    int
}

func (s *mockStream) Recv() ([]byte, error) {
	if s.pos >= len(s.chunks) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}

func (s *mockStream) Close() error { return nil }

type mockCompleter struct {
	stream domain.CompletionStream
	err    error
}

func (c *mockCompleter) StreamCompletion(_ context.Context, _ []domain.Turn) (domain.CompletionStream, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.stream, nil
}

type mockPinger struct {
	err error
}

func (p *mockPinger) Ping(_ context.Context) error { return p.err }

// deps bundles the collaborators behind a test server.
type deps struct {
	fetcher   *mockFetcher
	extractor *mockExtractor
	writer    *mockWriter
	scanner   *mockScanner
	completer *mockCompleter
	pinger    *mockPinger
}

func defaultDeps() *deps {
	return &deps{
		fetcher:   &mockFetcher{html: "<html></html>"},
		extractor: &mockExtractor{cand: domain.ReviewCandidate{
			Professor: "Dr. Smith",
			Subject:   "Biology",
			Stars:     4.5,
			Review:    "Great lecturer",
		}},
		writer:    &mockWriter{id: "id-1"},
		scanner:   &mockScanner{},
		completer: &mockCompleter{stream: &mockStream{}},
		pinger:    &mockPinger{},
	}
}

func newTestServer(d *deps) *Server {
	logger := zap.NewNop()
	return NewServer(
		scrapeuc.New(d.fetcher, d.extractor, d.writer, logger),
		searchuc.New(d.scanner),
		chatuc.New(d.scanner, d.completer, logger),
		healthuc.New(d.pinger, nil),
	)
}

func newTestRouter(d *deps) chirouter.Router {
	r := chirouter.NewRouter()
	newTestServer(d).Routes(r)
	return r
}

func mustReview(professor, subject string, stars float64, text string) domain.Review {
	rev, err := domain.NewReview(professor, subject, stars, text,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return rev
}
