package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/faqdesk/internal/repository/corpus"
	healthuc "github.com/kailas-cloud/faqdesk/internal/usecase/health"
	supportuc "github.com/kailas-cloud/faqdesk/internal/usecase/support"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// --- Helpers ---

var fixedNow = time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T, pinger healthuc.CachePinger) http.Handler {
	t.Helper()
	kb, err := corpus.Default()
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	support := supportuc.New(kb).WithClock(func() time.Time { return fixedNow })

	server := NewServer(support, healthuc.New(kb, pinger), nil).WithMaxBodyBytes(4096)
	return HandlerWithOptions(server, ChiServerOptions{BaseRouter: chi.NewRouter()})
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// --- POST /api/ai/query ---

func TestPostQuery_Answer(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodPost, PathQuery, `{"question":"  How do I create an account?  "}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	resp := decode[queryResponse](t, rr)
	if resp.Question != "How do I create an account?" {
		t.Errorf("question = %q, want trimmed", resp.Question)
	}
	if resp.Category != "Getting Started" {
		t.Errorf("category = %q, want Getting Started", resp.Category)
	}
	if !strings.HasPrefix(resp.Answer, "Here's what I found that might help:") {
		t.Errorf("expected multi-match answer, got %q", resp.Answer)
	}
	if resp.Timestamp != "2025-11-03T10:30:00.000Z" {
		t.Errorf("timestamp = %q", resp.Timestamp)
	}
}

func TestPostQuery_Fallback(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodPost, PathQuery, `{"question":"Bitcoin price in USD?"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	resp := decode[queryResponse](t, rr)
	if resp.Category != "General" {
		t.Errorf("category = %q, want General", resp.Category)
	}
	if !strings.Contains(resp.Answer, `"Bitcoin price in USD?"`) {
		t.Errorf("fallback must quote the question: %q", resp.Answer)
	}
}

func TestPostQuery_ValidationErrors(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing", body: `{}`, want: "Question is required and must be a string"},
		{name: "null", body: `{"question":null}`, want: "Question is required and must be a string"},
		{name: "empty", body: `{"question":""}`, want: "Question is required and must be a string"},
		{name: "number", body: `{"question":42}`, want: "Question is required and must be a string"},
		{name: "too short", body: `{"question":"  hi  "}`, want: "Question is too short. Please provide more details."},
		{
			name: "too long",
			body: `{"question":"` + strings.Repeat("a", 501) + `"}`,
			want: "Question is too long. Please keep it under 500 characters.",
		},
		{name: "malformed json", body: `{"question":`, want: msgInvalidBody},
		{name: "not an object", body: `"hello"`, want: msgInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, h, http.MethodPost, PathQuery, tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			if got := decode[errorResponse](t, rr).Error; got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPostQuery_LengthBoundaries(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, q := range []string{"abc", strings.Repeat("a", 500)} {
		rr := doRequest(t, h, http.MethodPost, PathQuery, `{"question":"`+q+`"}`)
		if rr.Code != http.StatusOK {
			t.Errorf("question of %d chars: status = %d, want 200", len(q), rr.Code)
		}
	}
}

func TestPostQuery_BodyTooLarge(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodPost, PathQuery, `{"question":"`+strings.Repeat("a", 8192)+`"}`)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rr.Code)
	}
	if got := decode[errorResponse](t, rr).Error; got != msgBodyTooLarge {
		t.Errorf("error = %q", got)
	}
}

// --- GET /api/ai/query ---

func TestGetKnowledgeBase_All(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodGet, PathQuery, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"title", "lastUpdated", "categories", "totalFAQs", "faqs"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	var total int
	_ = json.Unmarshal(resp["totalFAQs"], &total)
	if total != 18 {
		t.Errorf("totalFAQs = %d, want 18", total)
	}

	var categories []string
	_ = json.Unmarshal(resp["categories"], &categories)
	if len(categories) != 8 || categories[0] != "Getting Started" {
		t.Errorf("categories = %v", categories)
	}
}

func TestGetKnowledgeBase_EmptyCategoryListsAll(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodGet, PathQuery+"?category=", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	resp := decode[knowledgeBaseResponse](t, rr)
	if resp.TotalFAQs != 18 {
		t.Errorf("totalFAQs = %d, want 18", resp.TotalFAQs)
	}
}

func TestGetKnowledgeBase_Category(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		query     string
		wantName  string
		wantTotal int
	}{
		{query: "Blog%20Management", wantName: "Blog Management", wantTotal: 4},
		{query: "blog+management", wantName: "blog management", wantTotal: 4},
		{query: "Nonexistent", wantName: "Nonexistent", wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			rr := doRequest(t, h, http.MethodGet, PathQuery+"?category="+tt.query, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rr.Code)
			}

			var resp map[string]json.RawMessage
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			var name string
			var total int
			var faqs []json.RawMessage
			_ = json.Unmarshal(resp["category"], &name)
			_ = json.Unmarshal(resp["total"], &total)
			if err := json.Unmarshal(resp["faqs"], &faqs); err != nil {
				t.Fatalf("faqs must be an array: %s", resp["faqs"])
			}

			if name != tt.wantName {
				t.Errorf("category = %q, want %q", name, tt.wantName)
			}
			if total != tt.wantTotal || len(faqs) != tt.wantTotal {
				t.Errorf("total = %d, len(faqs) = %d, want %d", total, len(faqs), tt.wantTotal)
			}
		})
	}
}

func TestGetKnowledgeBase_RepeatedCategory(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodGet, PathQuery+"?category=About&category=Support", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decode[errorResponse](t, rr).Error; !strings.Contains(got, "category") {
		t.Errorf("error should name the parameter: %q", got)
	}
}

// --- GET /health ---

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pinger     healthuc.CachePinger
		wantStatus int
		wantBody   string
		wantChecks map[string]string
	}{
		{
			name:       "no cache",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
			wantChecks: map[string]string{"knowledge_base": "ok"},
		},
		{
			name:       "cache up",
			pinger:     &mockPinger{},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
			wantChecks: map[string]string{"knowledge_base": "ok", "cache": "ok"},
		},
		{
			name:       "cache down",
			pinger:     &mockPinger{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "degraded",
			wantChecks: map[string]string{"knowledge_base": "ok", "cache": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, tt.pinger)

			rr := doRequest(t, h, http.MethodGet, PathHealth, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			resp := decode[healthResponse](t, rr)
			if resp.Status != tt.wantBody {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantBody)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", resp.Checks, tt.wantChecks)
			}
			for k, v := range tt.wantChecks {
				if resp.Checks[k] != v {
					t.Errorf("checks[%s] = %q, want %q", k, resp.Checks[k], v)
				}
			}
		})
	}
}

// --- GET /metrics ---

func TestMetrics(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodGet, PathMetrics, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Error("expected default Go collectors in exposition")
	}
}

// --- Routing ---

func TestUnknownMethod(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := doRequest(t, h, http.MethodDelete, PathQuery, "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestHandler_WithAuth(t *testing.T) {
	kb, err := corpus.Default()
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	server := NewServer(supportuc.New(kb), healthuc.New(kb, nil), nil)

	r := chi.NewRouter()
	r.Use(BearerAuthMiddleware([]string{"secret"}))
	h := HandlerWithOptions(server, ChiServerOptions{BaseRouter: r})

	if rr := doRequest(t, h, http.MethodGet, PathQuery, ""); rr.Code != http.StatusUnauthorized {
		t.Errorf("without key: status = %d, want 401", rr.Code)
	}
	if rr := doRequest(t, h, http.MethodGet, PathHealth, ""); rr.Code != http.StatusOK {
		t.Errorf("health: status = %d, want 200", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, PathQuery, http.NoBody)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("with key: status = %d, want 200", rr.Code)
	}
}
