package airating

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/db"
	dbRedis "github.com/DUSHIMEDanPaul/ai-rating/internal/db/redis"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/extractor"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/fetcher"
	reviewrepo "github.com/DUSHIMEDanPaul/ai-rating/internal/repository/review"
	openaiCompletion "github.com/DUSHIMEDanPaul/ai-rating/internal/transport/openai"
	chatuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/chat"
	healthuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/health"
	scrapeuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/scrape"
	searchuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces for test substitution.
type scrapeUseCase interface {
	Scrape(ctx context.Context, rawURL string) (domain.Review, error)
}

type searchUseCase interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Review, error)
}

type chatUseCase interface {
	Relay(ctx context.Context, conv domain.Conversation) (<-chan chatuc.Chunk, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the ai-rating SDK entry point. It embeds the service directly
// over a Redis connection instead of going through the HTTP API.
type Client struct {
	store     db.Store
	scrapeSvc scrapeUseCase
	searchSvc searchUseCase
	chatSvc   chatUseCase
	healthSvc healthUseCase
}

// New creates a Client connected to Redis and waits for it to be ready.
func New(opts ...Option) (*Client, error) {
	cfg := clientConfig{
		addrs:            []string{"localhost:6379"},
		scraperTimeout:   10 * time.Second,
		completionModel:  "gpt-4o-mini",
		readinessTimeout: defaultReadinessTimeout,
		logger:           zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(&cfg)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	if err := store.WaitForReady(context.Background(), cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	pages := fetcher.New(fetcher.Config{
		APIKey:  cfg.scraperAPIKey,
		BaseURL: cfg.scraperBaseURL,
		Timeout: cfg.scraperTimeout,
		Logger:  cfg.logger,
	})
	completer := openaiCompletion.NewCompleter(&openaiCompletion.Config{
		APIKey:  cfg.completionAPIKey,
		BaseURL: cfg.completionBaseURL,
		Model:   cfg.completionModel,
		Logger:  cfg.logger,
	})
	reviews := reviewrepo.New(store)

	return &Client{
		store:     store,
		scrapeSvc: scrapeuc.New(pages, extractor.New(), reviews, cfg.logger),
		searchSvc: searchuc.New(reviews),
		chatSvc:   chatuc.New(reviews, completer, cfg.logger),
		healthSvc: healthuc.New(store, completer),
	}, nil
}

// Scrape fetches a professor page, extracts one review, and appends it to
// the store.
func (c *Client) Scrape(ctx context.Context, pageURL string) (Review, error) {
	rev, err := c.scrapeSvc.Scrape(ctx, pageURL)
	if err != nil {
		return Review{}, err
	}
	return reviewFromDomain(rev), nil
}

// Search filters the stored review log by the given criteria. Results keep
// insertion order.
func (c *Client) Search(ctx context.Context, criteria Criteria) ([]Review, error) {
	reviews, err := c.searchSvc.Search(ctx, domain.SearchCriteria{
		Subject:   criteria.Subject,
		MinRating: criteria.MinRating,
		Keywords:  criteria.Keywords,
	})
	if err != nil {
		return nil, err
	}

	out := make([]Review, len(reviews))
	for i, r := range reviews {
		out[i] = reviewFromDomain(r)
	}
	return out, nil
}

// Chat streams a completion grounded on reviews matching the last user
// message. The returned channel is closed when the stream ends; cancel ctx
// to stop early.
func (c *Client) Chat(ctx context.Context, turns []Turn) (<-chan Chunk, error) {
	chunks, err := c.chatSvc.Relay(ctx, conversationToDomain(turns))
	if err != nil {
		return nil, err
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		for chunk := range chunks {
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- Chunk{Content: chunk.Content, Err: chunk.Err}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close releases the underlying database connection.
func (c *Client) Close() {
	c.store.Close()
}
