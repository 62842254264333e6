package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
	logpkg "github.com/DUSHIMEDanPaul/ai-rating/internal/logger"
)

func doRequest(t *testing.T, d *deps, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTestRouter(d).ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload["error"]
}

func TestScrape_Success(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "GET", "/scrape?url=https://example.com/prof/1", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp scrapeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "Dr. Smith" || resp.Subject != "Biology" || resp.Rating != 4.5 || resp.Review != "Great lecturer" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestScrape_MissingURL(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "GET", "/scrape", "")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if msg := decodeError(t, rr); !strings.Contains(msg, "url is required") {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestScrape_FetchFailure(t *testing.T) {
	d := defaultDeps()
	d.fetcher.err = domain.ErrUpstreamFetch

	rr := doRequest(t, d, "GET", "/scrape?url=https://example.com/prof/1", "")

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if msg := decodeError(t, rr); msg != "upstream fetch failed" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestScrape_ExtractionFailure(t *testing.T) {
	d := defaultDeps()
	d.extractor.err = domain.NewExtractionError(domain.FieldRating)

	rr := doRequest(t, d, "GET", "/scrape?url=https://example.com/prof/1", "")

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if msg := decodeError(t, rr); !strings.Contains(msg, "missing rating") {
		t.Errorf("expected missing-field detail, got %q", msg)
	}
}

func TestSearch_Results(t *testing.T) {
	d := defaultDeps()
	d.scanner.reviews = []domain.Review{
		mustReview("Dr. A", "Math", 3.0, "fair grader"),
		mustReview("Dr. B", "Biology", 5.0, "amazing lectures"),
	}

	rr := doRequest(t, d, "POST", "/search", `{"minRating": 4}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	got := resp.Results[0]
	if got.Professor != "Dr. B" || got.Subject != "Biology" || got.Stars != 5.0 {
		t.Errorf("unexpected result: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestSearch_EmptyResultIsOK(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "POST", "/search", `{"subject": "Chemistry"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"results":[]`) {
		t.Errorf("expected empty results array, got %s", rr.Body.String())
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "POST", "/search", `{"minRating": "high"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSearch_StoreFailure(t *testing.T) {
	d := defaultDeps()
	d.scanner.err = domain.ErrStore

	rr := doRequest(t, d, "POST", "/search", `{}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestChat_StreamsChunks(t *testing.T) {
	d := defaultDeps()
	d.completer.stream = &mockStream{chunks: [][]byte{[]byte("Hello"), []byte(" world")}}

	rr := doRequest(t, d, "POST", "/chat", `[{"role":"user","content":"any professors?"}]`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("unexpected content type: %q", ct)
	}
	if rr.Body.String() != "Hello world" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestChat_MalformedBody(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "POST", "/chat", `{"role":"user"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestChat_LastTurnNotUser(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "POST", "/chat",
		`[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestChat_UpstreamFailureTerminatesEarly(t *testing.T) {
	d := defaultDeps()
	d.completer.stream = &mockStream{
		chunks: [][]byte{[]byte("partial")},
		err:    domain.ErrCompletion,
	}

	rr := doRequest(t, d, "POST", "/chat", `[{"role":"user","content":"hi"}]`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 (headers already sent), got %d", rr.Code)
	}
	if rr.Body.String() != "partial" {
		t.Errorf("expected partial output only, got %q", rr.Body.String())
	}
}

func TestChat_CompleterStartFailure(t *testing.T) {
	d := defaultDeps()
	d.completer.err = domain.ErrCompletion

	rr := doRequest(t, d, "POST", "/chat", `[{"role":"user","content":"hi"}]`)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestHandleDomainError_UsesRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reqLogger := zap.New(core).With(zap.String("request_id", "req-1"))

	d := defaultDeps()
	d.fetcher.err = domain.ErrUpstreamFetch

	r := chirouter.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := logpkg.ContextWithLogger(req.Context(), reqLogger)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	newTestServer(d).Routes(r)

	req := httptest.NewRequest("GET", "/scrape?url=https://example.com/prof/1", strings.NewReader(""))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	entries := logs.FilterMessage("domain error").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 domain error entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Errorf("expected request_id on log entry, got %+v", fields)
	}
}

func TestHealth_OK(t *testing.T) {
	d := defaultDeps()

	rr := doRequest(t, d, "GET", "/health", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	d := defaultDeps()
	d.pinger.err = domain.ErrStore

	rr := doRequest(t, d, "GET", "/health", "")

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
