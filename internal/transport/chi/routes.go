package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Route paths served by the API.
const (
	PathQuery   = "/api/ai/query"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

// ServerInterface is the set of handlers mounted by HandlerWithOptions.
type ServerInterface interface {
	// PostQuery answers a support question (POST /api/ai/query).
	PostQuery(w http.ResponseWriter, r *http.Request)
	// GetKnowledgeBase lists the FAQs, optionally by category (GET /api/ai/query).
	GetKnowledgeBase(w http.ResponseWriter, r *http.Request, params GetKnowledgeBaseParams)
	// HealthCheck reports component health (GET /health).
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// Metrics exposes Prometheus metrics (GET /metrics).
	Metrics(w http.ResponseWriter, r *http.Request)
}

// GetKnowledgeBaseParams defines parameters for GetKnowledgeBase.
type GetKnowledgeBaseParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// InvalidParamFormatError reports a query parameter that could not be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseRouter       chi.Router
	Middlewares      []func(http.Handler) http.Handler
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler mounts si on a fresh chi router.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerWithOptions mounts si on options.BaseRouter (or a fresh router).
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err.Error())
		}
	}

	wrapper := serverInterfaceWrapper{
		handler:            si,
		handlerMiddlewares: options.Middlewares,
		errorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Post(PathQuery, wrapper.PostQuery)
		r.Get(PathQuery, wrapper.GetKnowledgeBase)
		r.Get(PathHealth, wrapper.HealthCheck)
		r.Get(PathMetrics, wrapper.Metrics)
	})

	return r
}

type serverInterfaceWrapper struct {
	handler            ServerInterface
	handlerMiddlewares []func(http.Handler) http.Handler
	errorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *serverInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, h http.Handler) {
	for _, middleware := range siw.handlerMiddlewares {
		h = middleware(h)
	}
	h.ServeHTTP(w, r)
}

func (siw *serverInterfaceWrapper) PostQuery(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.handler.PostQuery))
}

func (siw *serverInterfaceWrapper) GetKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	var params GetKnowledgeBaseParams

	err := runtime.BindQueryParameter("form", true, false, "category", r.URL.Query(), &params.Category)
	if err != nil {
		siw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "category", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.handler.GetKnowledgeBase(w, r, params)
	}))
}

func (siw *serverInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.handler.HealthCheck))
}

func (siw *serverInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.handler.Metrics))
}
