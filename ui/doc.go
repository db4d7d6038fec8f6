// Package ui provides embeddable web handlers for rendering chat answers.
//
// The package provides two HTTP handlers:
//   - UIHandler: SSR frontend (HTMX) showing the conversation, the example
//     prompts and the thought process / supporting content panels
//   - APIHandler: JSON API to add answers and read their parsed form
//
// # Quick Start
//
//	store := service.NewMemoryStore(0)
//
//	mux := http.NewServeMux()
//	mux.Handle("/ui/", http.StripPrefix("/ui", ui.UIHandler(store, nil, &ui.Config{BasePath: "/ui"})))
//	mux.Handle("/api/", http.StripPrefix("/api", ui.APIHandler(store, nil)))
//
//	http.ListenAndServe(":8080", mux)
//
// The chat backend (or whatever produces answers) posts each ask response
// to the API; the frontend renders it.
//
// # Configuration
//
// The handlers accept an optional Config struct for customization:
//
//	cfg := &ui.Config{
//	    BasePath:              "/ui",
//	    ShowFollowupQuestions: true,
//	    RenderMarkdown:        false,
//	    PageSize:              25,
//	}
//
// # Reacting to clicks
//
// Pass an Actions implementation to observe what the user clicks:
//
//	type myActions struct{ ui.NopActions }
//
//	func (myActions) FollowupQuestionClicked(ctx context.Context, answerID uuid.UUID, q string) {
//	    go ask(q)
//	}
//
// # Adding Middleware
//
// Wrap handlers externally using standard Go patterns:
//
//	handler := authMiddleware(loggingMiddleware(ui.UIHandler(store, actions, cfg)))
//	http.Handle("/ui/", http.StripPrefix("/ui", handler))
package ui
