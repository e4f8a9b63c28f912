package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdesk/internal/domain"
	"github.com/kailas-cloud/faqdesk/internal/domain/answer"
	"github.com/kailas-cloud/faqdesk/internal/domain/faq"
	"github.com/kailas-cloud/faqdesk/internal/domain/question"
	logpkg "github.com/kailas-cloud/faqdesk/internal/logger"
	"github.com/kailas-cloud/faqdesk/internal/metrics"
	healthuc "github.com/kailas-cloud/faqdesk/internal/usecase/health"
	supportuc "github.com/kailas-cloud/faqdesk/internal/usecase/support"
)

// Client-facing messages for failures that carry no domain message.
const (
	msgInvalidBody     = "Invalid request body"
	msgBodyTooLarge    = "Request body too large"
	msgInternalFailure = "Internal server error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the support agent API.
type Server struct {
	support       *supportuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(support *supportuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		support: support,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		bodyTooLargeHandler,
	}
	return s
}

// WithMaxBodyBytes limits the size of POST bodies. Zero disables the limit.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	s.maxBodyBytes = n
	return s
}

type queryRequest struct {
	Question json.RawMessage `json:"question"`
}

type queryResponse struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

type knowledgeBaseResponse struct {
	Title       string    `json:"title"`
	LastUpdated string    `json:"lastUpdated"`
	Categories  []string  `json:"categories"`
	TotalFAQs   int       `json:"totalFAQs"`
	FAQs        []faq.FAQ `json:"faqs"`
}

type categoryResponse struct {
	Category string    `json:"category"`
	FAQs     []faq.FAQ `json:"faqs"`
	Total    int       `json:"total"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PostQuery handles POST /api/ai/query.
func (s *Server) PostQuery(w http.ResponseWriter, r *http.Request) {
	body := io.Reader(r.Body)
	if s.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}

	var req queryRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.handleDomainError(w, r, err)
			return
		}
		logpkg.FromContext(r.Context()).Debug("Rejected malformed query body", zap.Error(err))
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	q, err := question.New(questionText(req.Question))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	ans, err := s.support.Ask(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Question:  ans.Question,
		Answer:    ans.Answer,
		Category:  ans.Category,
		Timestamp: ans.Timestamp.UTC().Format(answer.TimestampLayout),
	})
}

// questionText returns nil unless raw is a JSON string, so absent, null and
// non-string questions all fail validation as missing.
func questionText(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil
	}
	return &text
}

// GetKnowledgeBase handles GET /api/ai/query.
func (s *Server) GetKnowledgeBase(w http.ResponseWriter, r *http.Request, params GetKnowledgeBaseParams) {
	if params.Category != nil && *params.Category != "" {
		listing := s.support.Category(r.Context(), *params.Category)
		writeJSON(w, http.StatusOK, categoryResponse{
			Category: listing.Category,
			FAQs:     listing.FAQs,
			Total:    len(listing.FAQs),
		})
		return
	}

	kb := s.support.KnowledgeBase(r.Context())
	writeJSON(w, http.StatusOK, knowledgeBaseResponse{
		Title:       kb.Title,
		LastUpdated: kb.LastUpdated,
		Categories:  kb.Categories,
		TotalFAQs:   len(kb.FAQs),
		FAQs:        kb.FAQs,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
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
	writeJSON(w, status, errorResponse{Error: message})
}

// validationHandler reports rejected questions with their user-facing message.
func validationHandler(w http.ResponseWriter, err error) bool {
	var ve *question.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	metrics.SupportRejectedTotal.WithLabelValues(string(ve.Kind)).Inc()
	writeError(w, http.StatusBadRequest, ve.Error())
	return true
}

func bodyTooLargeHandler(w http.ResponseWriter, err error) bool {
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		return false
	}
	writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	if errors.Is(err, domain.ErrValidation) {
		log.Debug("validation error", zap.Error(err))
	} else {
		log.Warn("domain error", zap.Error(err))
	}
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, msgInternalFailure)
}
