// Package view renders an answer: the thought process and supporting
// content triggers, the sanitized body, the numbered citation row and the
// follow-up question row.
//
// Build runs the pipeline parse (cached per answer ID), optional markdown,
// sanitize, and citation numbering. Sanitization always runs.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
	"github.com/youssefsiam38/answerui/citation"
	"github.com/youssefsiam38/answerui/markdown"
	"github.com/youssefsiam38/answerui/parser"
	"github.com/youssefsiam38/answerui/sanitize"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds renderer configuration. The zero value is usable.
type Config struct {
	// Resolver maps citation labels to document paths.
	// Defaults to citation.ContentResolver with an empty base path.
	Resolver citation.Resolver

	// Sanitizer cleans the answer body. Nil selects sanitize.New(); there is
	// no way to turn sanitization off.
	Sanitizer sanitize.Sanitizer

	// Links builds URLs for clickable parts, inline references included.
	// Nil renders citations as plain links to the document path and
	// triggers without targets.
	Links Links

	// RenderMarkdown converts the body from markdown before sanitizing.
	RenderMarkdown bool

	// CacheSize bounds the parse cache. Defaults to DefaultCacheSize.
	CacheSize int

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Renderer builds and renders answer views.
type Renderer struct {
	resolver  citation.Resolver
	sanitizer sanitize.Sanitizer
	markdown  *markdown.Renderer
	links     Links
	cache     *Cache
	tmpl      *template.Template
	logger    Logger
}

// New creates a Renderer.
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.CacheSize < 0 {
		return nil, answerui.ErrInvalidConfig
	}

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		resolver:  cfg.Resolver,
		sanitizer: cfg.Sanitizer,
		links:     cfg.Links,
		cache:     NewCache(cfg.CacheSize),
		tmpl:      tmpl,
		logger:    cfg.Logger,
	}
	if r.resolver == nil {
		r.resolver = citation.ContentResolver{}
	}
	if r.sanitizer == nil {
		r.sanitizer = sanitize.New()
	}
	if cfg.RenderMarkdown {
		r.markdown = markdown.New()
	}
	return r, nil
}

// Cache returns the parse cache, for invalidation and stats.
func (r *Renderer) Cache() *Cache {
	return r.cache
}

// Parse returns the parsed form of a, served from the cache when possible.
func (r *Renderer) Parse(a *answerui.Answer) (answerui.ParsedAnswer, error) {
	if a == nil {
		return answerui.ParsedAnswer{}, answerui.ErrNilAnswer
	}
	return r.parseAnswer(a), nil
}

func (r *Renderer) parseAnswer(a *answerui.Answer) answerui.ParsedAnswer {
	return r.cache.Parse(a, func(text string) answerui.ParsedAnswer {
		return r.parse(a.ID, text)
	})
}

// parse points inline references at the same targets as the citation row,
// so both dispatch through the citation click route when Links is set.
func (r *Renderer) parse(id uuid.UUID, text string) answerui.ParsedAnswer {
	opts := parser.Options{MarkdownLinks: r.markdown != nil}
	if r.links != nil {
		opts.Href = func(label string, n int) string {
			return r.links.Citation(id, citation.Chip{Index: n, Label: label, Path: r.resolver.Resolve(label)})
		}
	}
	parsed := parser.ParseWith(text, r.resolver, opts)
	if r.logger != nil {
		r.logger.Debug("parsed answer",
			"citations", len(parsed.Citations),
			"followups", len(parsed.FollowupQuestions))
	}
	return parsed
}

// Build creates the view model of a.
func (r *Renderer) Build(a *answerui.Answer, props Props) (*Model, error) {
	if a == nil {
		return nil, answerui.ErrNilAnswer
	}
	parsed := r.parseAnswer(a)

	body := parsed.HTML
	if r.markdown != nil {
		var err error
		body, err = r.markdown.Render(body)
		if err != nil {
			return nil, answerui.NewRenderError("build", a.ID, err)
		}
	}

	cb := props.Callbacks
	return &Model{
		AnswerID:                 a.ID,
		IsSelected:               props.IsSelected,
		ThoughtProcessEnabled:    a.HasThoughts(),
		SupportingContentEnabled: a.HasSupportingContent(),
		Body:                     template.HTML(r.sanitizer.Sanitize(body)),
		Citations:                citation.Number(parsed.Citations, a.DataPoints, r.resolver),
		FollowupQuestions:        parsed.FollowupQuestions,
		ShowFollowups: len(parsed.FollowupQuestions) > 0 &&
			props.ShowFollowupQuestions &&
			cb.OnFollowupQuestionClicked != nil,
		callbacks: cb,
		links:     r.links,
	}, nil
}

// Render writes the answer fragment for m.
func (r *Renderer) Render(w io.Writer, m *Model) error {
	if err := r.tmpl.ExecuteTemplate(w, "answer", m); err != nil {
		return answerui.NewRenderError("render", m.AnswerID, err)
	}
	return nil
}

// RenderAnswer builds and renders a in one step.
func (r *Renderer) RenderAnswer(w io.Writer, a *answerui.Answer, props Props) (*Model, error) {
	m, err := r.Build(a, props)
	if err != nil {
		return nil, err
	}
	return m, r.Render(w, m)
}

// RenderThoughtProcess writes the sanitized thought process of a.
func (r *Renderer) RenderThoughtProcess(w io.Writer, a *answerui.Answer) error {
	if a == nil {
		return answerui.ErrNilAnswer
	}
	data := struct {
		Thoughts template.HTML
	}{
		Thoughts: template.HTML(r.sanitizer.Sanitize(a.Thoughts)),
	}
	if err := r.tmpl.ExecuteTemplate(w, "thought-process", data); err != nil {
		return answerui.NewRenderError("render thought process", a.ID, err)
	}
	return nil
}

type supportingItem struct {
	Label   string
	Content template.HTML
}

// RenderSupportingContent writes the data points of a as a list, each with
// its label as title and its sanitized content.
func (r *Renderer) RenderSupportingContent(w io.Writer, a *answerui.Answer) error {
	if a == nil {
		return answerui.ErrNilAnswer
	}
	items := make([]supportingItem, 0, len(a.DataPoints))
	for _, dp := range answerui.ParseDataPoints(a.DataPoints) {
		items = append(items, supportingItem{
			Label:   dp.Label,
			Content: template.HTML(r.sanitizer.Sanitize(dp.Content)),
		})
	}
	if err := r.tmpl.ExecuteTemplate(w, "supporting-content", items); err != nil {
		return answerui.NewRenderError("render supporting content", a.ID, err)
	}
	return nil
}
