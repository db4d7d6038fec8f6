package api

import (
	"net/http"

	"github.com/youssefsiam38/answerui/internal/validation"
	"github.com/youssefsiam38/answerui/ui/service"
	"github.com/youssefsiam38/answerui/view"
)

// Config holds API router configuration.
type Config struct {
	// PageSize for pagination.
	PageSize int

	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the API router state.
type router struct {
	svc       *service.Service
	views     *view.Renderer
	config    *Config
	validator *validation.Validator
}

// NewRouter creates a new API router.
func NewRouter(svc *service.Service, views *view.Renderer, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			PageSize: 25,
		}
	}

	v, err := validation.New("json")
	if err != nil {
		panic("api: validator: " + err.Error())
	}

	r := &router{
		svc:       svc,
		views:     views,
		config:    cfg,
		validator: v,
	}

	mux := http.NewServeMux()

	// Answers
	mux.HandleFunc("POST /answers", r.handleCreateAnswer)
	mux.HandleFunc("GET /answers", r.handleListAnswers)
	mux.HandleFunc("GET /answers/{id}", r.handleGetAnswer)
	mux.HandleFunc("GET /answers/{id}/data-points", r.handleGetDataPoints)

	// Examples
	mux.HandleFunc("GET /examples", r.handleListExamples)

	// Cache
	mux.HandleFunc("GET /cache/stats", r.handleCacheStats)

	return withMiddleware(mux, cfg)
}

// withMiddleware wraps the handler with common middleware.
func withMiddleware(handler http.Handler, cfg *Config) http.Handler {
	// Add JSON content type
	handler = jsonMiddleware(handler)
	// Add error recovery
	handler = recoveryMiddleware(handler, cfg.Logger)
	return handler
}

// jsonMiddleware sets JSON content type for all responses.
func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, `{"error":{"code":"internal_error","message":"internal server error"}}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
