package ui

import (
	"net/http"

	"github.com/youssefsiam38/answerui/citation"
	"github.com/youssefsiam38/answerui/ui/api"
	"github.com/youssefsiam38/answerui/ui/frontend"
	"github.com/youssefsiam38/answerui/ui/service"
	"github.com/youssefsiam38/answerui/view"
)

// UIHandler returns an http.Handler for the SSR frontend.
//
// The actions parameter receives clicks; nil ignores them.
//
// Usage:
//
//	http.Handle("/ui/", http.StripPrefix("/ui", ui.UIHandler(store, actions, cfg)))
//	r.Mount("/ui", ui.UIHandler(store, actions, cfg))
func UIHandler(store service.Store, actions Actions, cfg *Config) http.Handler {
	cfg = prepare(cfg)
	if actions == nil {
		actions = NopActions{}
	}

	return frontend.NewRouter(service.New(store), newRenderer(cfg, true), actions, &frontend.Config{
		BasePath:              cfg.BasePath,
		ShowFollowupQuestions: cfg.ShowFollowupQuestions,
		PageSize:              cfg.PageSize,
		Logger:                cfg.Logger,
	})
}

// APIHandler returns an http.Handler for the JSON API.
//
// The API renders answers with its own parse cache, separate from the
// frontend's; GET /cache/stats covers API requests only.
//
// Usage:
//
//	http.Handle("/api/", http.StripPrefix("/api", ui.APIHandler(store, cfg)))
func APIHandler(store service.Store, cfg *Config) http.Handler {
	cfg = prepare(cfg)

	return api.NewRouter(service.New(store), newRenderer(cfg, false), &api.Config{
		PageSize: cfg.PageSize,
		Logger:   cfg.Logger,
	})
}

func prepare(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}

	// Validate configuration (panic on invalid config as this is a programmer error)
	if err := cfg.validate(); err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}
	return cfg
}

func newRenderer(cfg *Config, withLinks bool) *view.Renderer {
	vcfg := &view.Config{
		Resolver:       citation.ContentResolver{BasePath: cfg.ContentBasePath},
		RenderMarkdown: cfg.RenderMarkdown,
		CacheSize:      cfg.CacheSize,
	}
	if withLinks {
		vcfg.Links = view.RouteLinks{BasePath: cfg.BasePath}
	}
	if cfg.Logger != nil {
		vcfg.Logger = cfg.Logger
	}

	r, err := view.New(vcfg)
	if err != nil {
		panic("ui: renderer: " + err.Error())
	}
	return r
}
