package airating

import (
	"context"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
	chatuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/chat"
	healthuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/health"
)

// --- scrapeUseCase mock ---

type mockScrapeUC struct {
	scrapeFn func(ctx context.Context, rawURL string) (domain.Review, error)
}

func (m *mockScrapeUC) Scrape(ctx context.Context, rawURL string) (domain.Review, error) {
	return m.scrapeFn(ctx, rawURL)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Review, error)
}

func (m *mockSearchUC) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Review, error) {
	return m.searchFn(ctx, criteria)
}

// --- chatUseCase mock ---

type mockChatUC struct {
	relayFn func(ctx context.Context, conv domain.Conversation) (<-chan chatuc.Chunk, error)
}

func (m *mockChatUC) Relay(ctx context.Context, conv domain.Conversation) (<-chan chatuc.Chunk, error) {
	return m.relayFn(ctx, conv)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}
