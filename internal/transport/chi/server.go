// Package chi exposes the HTTP API: scrape ingestion, structured search,
// streaming chat, health, and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
	logpkg "github.com/DUSHIMEDanPaul/ai-rating/internal/logger"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/metrics"
	chatuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/chat"
	healthuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/health"
	scrapeuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/scrape"
	searchuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the use case services behind the HTTP handlers. Logging goes
// through the request-scoped logger carried in the request context.
type Server struct {
	scrape        *scrapeuc.Service
	search        *searchuc.Service
	chat          *chatuc.Service
	health        *healthuc.Service
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	scrape *scrapeuc.Service,
	search *searchuc.Service,
	chat *chatuc.Service,
	health *healthuc.Service,
) *Server {
	s := &Server{
		scrape: scrape,
		search: search,
		chat:   chat,
		health: health,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest),
		sentinelHandler(domain.ErrUpstreamFetch, http.StatusInternalServerError),
		sentinelHandler(domain.ErrExtraction, http.StatusInternalServerError),
		sentinelHandler(domain.ErrStore, http.StatusInternalServerError),
		sentinelHandler(domain.ErrCompletion, http.StatusBadGateway),
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/scrape", s.Scrape)
	r.Post("/search", s.Search)
	r.Post("/chat", s.Chat)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// scrapeResponse mirrors the extracted review fields.
type scrapeResponse struct {
	Name    string  `json:"name"`
	Subject string  `json:"subject"`
	Rating  float64 `json:"rating"`
	Review  string  `json:"review"`
}

// Scrape handles GET /scrape?url=...
func (s *Server) Scrape(w http.ResponseWriter, r *http.Request) {
	rev, err := s.scrape.Scrape(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		metrics.ReviewsScrapedTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, r, err)
		return
	}
	metrics.ReviewsScrapedTotal.WithLabelValues("success").Inc()

	writeJSON(w, http.StatusOK, scrapeResponse{
		Name:    rev.Professor(),
		Subject: rev.Subject(),
		Rating:  rev.Stars(),
		Review:  rev.Text(),
	})
}

// searchRequest carries the optional filter criteria. Absent fields skip
// their filter stage.
type searchRequest struct {
	Subject   string   `json:"subject"`
	MinRating *float64 `json:"minRating"`
	Keywords  []string `json:"keywords"`
}

type reviewItem struct {
	Professor string    `json:"professor"`
	Subject   string    `json:"subject"`
	Stars     float64   `json:"stars"`
	Review    string    `json:"review"`
	Timestamp time.Time `json:"timestamp"`
}

type searchResponse struct {
	Results []reviewItem `json:"results"`
}

// Search handles POST /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	results, err := s.search.Search(r.Context(), domain.SearchCriteria{
		Subject:   req.Subject,
		MinRating: req.MinRating,
		Keywords:  req.Keywords,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]reviewItem, len(results))
	for i, rev := range results {
		items[i] = reviewItem{
			Professor: rev.Professor(),
			Subject:   rev.Subject(),
			Stars:     rev.Stars(),
			Review:    rev.Text(),
			Timestamp: rev.CapturedAt(),
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: items})
}

// turnRequest is one conversation message in the chat request body.
type turnRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat handles POST /chat. The response is a chunked plain-text stream;
// chunks are flushed as they arrive from the completion provider. An
// upstream failure mid-stream terminates the response early.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var turns []turnRequest
	if err := json.NewDecoder(r.Body).Decode(&turns); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	conv := make(domain.Conversation, len(turns))
	for i, t := range turns {
		conv[i] = domain.Turn{Role: t.Role, Content: t.Content}
	}

	chunks, err := s.chat.Relay(r.Context(), conv)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	logger := logpkg.FromContext(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	for chunk := range chunks {
		if chunk.Err != nil {
			// Headers are already on the wire; all we can do is stop.
			logger.Warn("chat stream aborted", zap.Error(chunk.Err))
			metrics.ChatStreamsTotal.WithLabelValues("aborted").Inc()
			return
		}
		if _, err := w.Write([]byte(chunk.Content)); err != nil {
			logger.Debug("chat client gone", zap.Error(err))
			metrics.ChatStreamsTotal.WithLabelValues("aborted").Inc()
			return
		}
		metrics.ChatStreamChunksTotal.Inc()
		if flusher != nil {
			flusher.Flush()
		}
	}
	metrics.ChatStreamsTotal.WithLabelValues("completed").Inc()
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// safeDomainMessage returns a client-facing error message without exposing
// internals. Input and extraction errors keep their detail so callers can
// tell which parameter or page field failed.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrExtraction) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrUpstreamFetch,
		domain.ErrStore,
		domain.ErrCompletion,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

// handleDomainError logs through the request-scoped logger installed by the
// wide-event middleware so entries carry the request id.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logpkg.FromContext(r.Context())
	logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
