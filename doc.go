// Package answerui renders chat-style answers from a retrieval-augmented
// chat backend as server-side HTML.
//
// An answer arrives as raw model output containing inline citation markers
// ("[info1.txt]") and follow-up question markers ("<<What else?>>"), along
// with the supporting data points that were retrieved for it. The packages in
// this module turn that into a safe HTML fragment:
//
//   - parser: extracts follow-up questions and replaces citation markers with
//     numbered references
//   - citation: numbers the citation chips, merging data points that were not
//     cited inline, and resolves labels to content paths
//   - sanitize: the allow-list HTML sanitizer every rendered body goes through
//   - markdown: optional markdown pass for models that answer in markdown
//   - view: the answer view with its parse cache and click dispatch
//   - examples: the static example prompt list
//   - ui: embeddable HTTP handlers (SSR frontend and JSON API)
//
// # Quick Start
//
//	a := answerui.NewAnswer(resp.Answer, resp.Thoughts, resp.DataPoints)
//
//	r, _ := view.New(nil)
//	m, _ := r.Build(a, view.Props{
//	    ShowFollowupQuestions: true,
//	    Callbacks: view.Callbacks{
//	        OnCitationClicked: func(path string) { log.Println("open", path) },
//	        OnFollowupQuestionClicked: func(q string) { ask(q) },
//	    },
//	})
//	_ = r.Render(w, m)
//
// # Mounting the UI
//
//	store := service.NewMemoryStore(0)
//	mux := http.NewServeMux()
//	mux.Handle("/ui/", http.StripPrefix("/ui", ui.UIHandler(store, nil, &ui.Config{BasePath: "/ui"})))
//	mux.Handle("/api/", http.StripPrefix("/api", ui.APIHandler(store, nil)))
package answerui
