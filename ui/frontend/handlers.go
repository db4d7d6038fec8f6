package frontend

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
	"github.com/youssefsiam38/answerui/examples"
	"github.com/youssefsiam38/answerui/ui/service"
	"github.com/youssefsiam38/answerui/view"
)

// HX-Trigger event names sent with click responses.
const (
	eventFollowupQuestion = "followupQuestion"
	eventExample          = "exampleClicked"
)

// parseUUID parses a UUID from a string.
func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// logError logs an error if the logger is configured.
func (rt *router) logError(msg string, err error) {
	if rt.config.Logger != nil {
		rt.config.Logger.Warn(msg, "error", err.Error())
	}
}

// loadAnswer resolves the {id} path value. It writes the error response and
// returns nil when the answer cannot be served.
func (rt *router) loadAnswer(w http.ResponseWriter, r *http.Request) *answerui.Answer {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid answer ID", http.StatusBadRequest)
		return nil
	}
	a, err := rt.svc.GetAnswer(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "answer not found", http.StatusNotFound)
		return nil
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	return a
}

// buildAnswer builds the view of a with callbacks that report to the
// configured Actions.
func (rt *router) buildAnswer(r *http.Request, a *answerui.Answer, selected bool) (*view.Model, error) {
	ctx := r.Context()
	return rt.views.Build(a, view.Props{
		IsSelected:            selected,
		ShowFollowupQuestions: rt.config.ShowFollowupQuestions,
		Callbacks: view.Callbacks{
			OnCitationClicked: func(path string) {
				rt.actions.CitationClicked(ctx, a.ID, path)
			},
			OnThoughtProcessClicked: func() {
				rt.actions.ThoughtProcessClicked(ctx, a.ID)
			},
			OnSupportingContentClicked: func() {
				rt.actions.SupportingContentClicked(ctx, a.ID)
			},
			OnFollowupQuestionClicked: func(q string) {
				rt.actions.FollowupQuestionClicked(ctx, a.ID, q)
			},
		},
	})
}

func (rt *router) exampleList() *examples.List {
	l := examples.NewList(nil)
	l.Target = func(i int) string {
		return rt.config.BasePath + "/examples/" + strconv.Itoa(i)
	}
	return l
}

// Main page handlers

func (rt *router) handleIndex(w http.ResponseWriter, r *http.Request) {
	conversation, err := rt.svc.Conversation(r.Context(), rt.config.PageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	answers := make([]template.HTML, 0, len(conversation))
	for i, a := range conversation {
		m, err := rt.buildAnswer(r, a, i == len(conversation)-1)
		if err != nil {
			rt.logError("build answer", err)
			continue
		}
		var buf bytes.Buffer
		if err := rt.views.Render(&buf, m); err != nil {
			rt.logError("render answer", err)
			continue
		}
		answers = append(answers, template.HTML(buf.String()))
	}

	var exampleHTML template.HTML
	if len(conversation) == 0 {
		var buf bytes.Buffer
		if err := rt.exampleList().Render(&buf); err != nil {
			rt.logError("render examples", err)
		} else {
			exampleHTML = template.HTML(buf.String())
		}
	}

	data := map[string]any{
		"Answers":  answers,
		"Examples": exampleHTML,
	}

	if err := rt.renderer.render(w, r, "index.html", "Chat", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Answer fragment handlers

func (rt *router) handleAnswer(w http.ResponseWriter, r *http.Request) {
	a := rt.loadAnswer(w, r)
	if a == nil {
		return
	}
	selected, _ := strconv.ParseBool(r.URL.Query().Get("selected"))

	m, err := rt.buildAnswer(r, a, selected)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rt.views.Render(w, m); err != nil {
		rt.logError("render answer", err)
	}
}

func (rt *router) handleThoughtProcess(w http.ResponseWriter, r *http.Request) {
	a := rt.loadAnswer(w, r)
	if a == nil {
		return
	}
	m, err := rt.buildAnswer(r, a, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := m.ClickThoughtProcess(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rt.views.RenderThoughtProcess(w, a); err != nil {
		rt.logError("render thought process", err)
	}
}

func (rt *router) handleSupportingContent(w http.ResponseWriter, r *http.Request) {
	a := rt.loadAnswer(w, r)
	if a == nil {
		return
	}
	m, err := rt.buildAnswer(r, a, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := m.ClickSupportingContent(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rt.views.RenderSupportingContent(w, a); err != nil {
		rt.logError("render supporting content", err)
	}
}

func (rt *router) handleCitation(w http.ResponseWriter, r *http.Request) {
	a := rt.loadAnswer(w, r)
	if a == nil {
		return
	}
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "invalid citation number", http.StatusBadRequest)
		return
	}
	m, err := rt.buildAnswer(r, a, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	chip, ok := m.Citation(n)
	if !ok {
		http.Error(w, "citation not found", http.StatusNotFound)
		return
	}
	if err := m.ClickCitation(n); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", chip.Path)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, chip.Path, http.StatusSeeOther)
}

func (rt *router) handleFollowup(w http.ResponseWriter, r *http.Request) {
	a := rt.loadAnswer(w, r)
	if a == nil {
		return
	}
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "invalid follow-up number", http.StatusBadRequest)
		return
	}
	m, err := rt.buildAnswer(r, a, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	err = m.ClickFollowup(n)
	switch {
	case errors.Is(err, view.ErrFollowupsHidden):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	rt.trigger(w, eventFollowupQuestion, m.FollowupQuestions[n])
	w.WriteHeader(http.StatusNoContent)
}

// Example handlers

func (rt *router) handleExample(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "invalid example number", http.StatusBadRequest)
		return
	}

	var value string
	l := rt.exampleList()
	l.OnExampleClicked = func(v string) {
		value = v
		rt.actions.ExampleClicked(r.Context(), v)
	}
	if err := l.Click(n); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	rt.trigger(w, eventExample, value)
	w.WriteHeader(http.StatusNoContent)
}

// trigger sets an HX-Trigger header firing event with value as detail.
func (rt *router) trigger(w http.ResponseWriter, event, value string) {
	b, err := json.Marshal(map[string]string{event: value})
	if err != nil {
		rt.logError("encode HX-Trigger", err)
		return
	}
	w.Header().Set("HX-Trigger", string(b))
}
