package frontend

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui/ui/service"
	"github.com/youssefsiam38/answerui/view"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// All navigation links will be prefixed with this path.
	BasePath string

	// ShowFollowupQuestions enables the follow-up question row.
	ShowFollowupQuestions bool

	// PageSize is the number of answers shown in the conversation.
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

// Actions receives the user's clicks.
type Actions interface {
	CitationClicked(ctx context.Context, answerID uuid.UUID, path string)
	ThoughtProcessClicked(ctx context.Context, answerID uuid.UUID)
	SupportingContentClicked(ctx context.Context, answerID uuid.UUID)
	FollowupQuestionClicked(ctx context.Context, answerID uuid.UUID, question string)
	ExampleClicked(ctx context.Context, value string)
}

// router holds the frontend router state.
type router struct {
	svc      *service.Service
	views    *view.Renderer
	actions  Actions
	config   *Config
	renderer *renderer
}

// NewRouter creates a new frontend router.
func NewRouter(svc *service.Service, views *view.Renderer, actions Actions, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			PageSize: 25,
		}
	}

	// Parse base templates (layout, shared fragments)
	// Page-specific templates are parsed dynamically by the renderer
	// to avoid conflicts between "content" blocks in different pages.
	baseTmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS,
			"templates/base.html",
		))

	r := &router{
		svc:      svc,
		views:    views,
		actions:  actions,
		config:   cfg,
		renderer: newRenderer(baseTmpl, templatesFS, cfg),
	}

	mux := http.NewServeMux()

	// Static assets
	staticSub, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Main pages
	mux.HandleFunc("GET /{$}", r.handleIndex)

	// Answer fragments
	mux.HandleFunc("GET /answers/{id}", r.handleAnswer)
	mux.HandleFunc("GET /answers/{id}/thoughts", r.handleThoughtProcess)
	mux.HandleFunc("GET /answers/{id}/supporting-content", r.handleSupportingContent)
	mux.HandleFunc("GET /answers/{id}/citations/{n}", r.handleCitation)
	mux.HandleFunc("POST /answers/{id}/followups/{n}", r.handleFollowup)

	// Examples
	mux.HandleFunc("POST /examples/{n}", r.handleExample)

	return withFrontendMiddleware(mux, cfg)
}

// withFrontendMiddleware wraps the handler with frontend-specific middleware.
func withFrontendMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = frontendRecoveryMiddleware(handler, cfg.Logger)
	return handler
}

// frontendRecoveryMiddleware recovers from panics.
func frontendRecoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
	}
}
