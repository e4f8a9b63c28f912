package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the service cannot answer questions.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names reported in Report.Checks.
const (
	ComponentKnowledgeBase = "knowledge_base"
	ComponentCache         = "cache"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	kb    KnowledgeBase
	cache CachePinger
}

// New creates a Service. cache can be nil when caching is disabled.
func New(kb KnowledgeBase, cache CachePinger) *Service {
	return &Service{kb: kb, cache: cache}
}

// Check runs health checks against all components.
// An empty knowledge base is fatal; a failing cache only degrades service,
// since answers can still be computed without it.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if s.kb == nil || s.kb.Len() == 0 {
		checks[ComponentKnowledgeBase] = CheckError
		status = Unhealthy
	} else {
		checks[ComponentKnowledgeBase] = CheckOK
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks[ComponentCache] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks[ComponentCache] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
