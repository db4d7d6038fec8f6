package frontend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
	"github.com/youssefsiam38/answerui/citation"
	"github.com/youssefsiam38/answerui/examples"
	"github.com/youssefsiam38/answerui/ui/service"
	"github.com/youssefsiam38/answerui/view"
)

type recordingActions struct {
	citations  []string
	thoughts   int
	supporting int
	followups  []string
	examples   []string
}

func (a *recordingActions) CitationClicked(ctx context.Context, id uuid.UUID, path string) {
	a.citations = append(a.citations, path)
}
func (a *recordingActions) ThoughtProcessClicked(ctx context.Context, id uuid.UUID) { a.thoughts++ }
func (a *recordingActions) SupportingContentClicked(ctx context.Context, id uuid.UUID) {
	a.supporting++
}
func (a *recordingActions) FollowupQuestionClicked(ctx context.Context, id uuid.UUID, q string) {
	a.followups = append(a.followups, q)
}
func (a *recordingActions) ExampleClicked(ctx context.Context, value string) {
	a.examples = append(a.examples, value)
}

type fixture struct {
	handler http.Handler
	svc     *service.Service
	actions *recordingActions
}

func newFixture(t *testing.T, showFollowups bool) *fixture {
	t.Helper()
	views, err := view.New(&view.Config{
		Resolver: citation.ContentResolver{BasePath: "/ui"},
		Links:    view.RouteLinks{BasePath: "/ui"},
	})
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	svc := service.New(service.NewMemoryStore(0))
	actions := &recordingActions{}
	h := NewRouter(svc, views, actions, &Config{
		BasePath:              "/ui",
		ShowFollowupQuestions: showFollowups,
		PageSize:              25,
	})
	return &fixture{handler: h, svc: svc, actions: actions}
}

func (f *fixture) add(t *testing.T, a *answerui.Answer) *answerui.Answer {
	t.Helper()
	if err := f.svc.AddAnswer(context.Background(), a); err != nil {
		t.Fatalf("AddAnswer() error = %v", err)
	}
	return a
}

func (f *fixture) do(method, target string, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestIndex_EmptyShowsExamples(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodGet, "/", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Count(body, `class="example"`) != len(examples.Default()) {
		t.Errorf("expected %d examples:\n%s", len(examples.Default()), body)
	}
	if !strings.Contains(body, `hx-post="/ui/examples/0"`) {
		t.Errorf("example target missing:\n%s", body)
	}
}

func TestIndex_RendersConversation(t *testing.T) {
	f := newFixture(t, true)
	f.add(t, answerui.NewAnswer("First [a.pdf]", "", nil))
	last := f.add(t, answerui.NewAnswer("Second [b.pdf]", "", nil))

	rec := f.do(http.MethodGet, "/", false)
	body := rec.Body.String()

	if strings.Contains(body, `class="example"`) {
		t.Error("examples shown with a non-empty conversation")
	}
	if strings.Index(body, "First") > strings.Index(body, "Second") {
		t.Error("answers not in conversation order")
	}
	if !strings.Contains(body, `answer-container selected" id="answer-`+last.ID.String()) {
		t.Errorf("last answer not selected:\n%s", body)
	}
}

func TestAnswerFragment(t *testing.T) {
	f := newFixture(t, true)
	a := f.add(t, answerui.NewAnswer("Covered [DocA]. <<Dental?>>", "t", []string{"DocA: x", "DocB: y"}))

	rec := f.do(http.MethodGet, "/answers/"+a.ID.String(), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, w := range []string{">1. DocA</a>", ">2. DocB</a>", "Follow-up questions:"} {
		if !strings.Contains(body, w) {
			t.Errorf("fragment missing %q", w)
		}
	}

	if rec := f.do(http.MethodGet, "/answers/"+uuid.NewString(), true); rec.Code != http.StatusNotFound {
		t.Errorf("unknown answer status = %d, want 404", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/answers/not-a-uuid", true); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}

func TestCitationClick(t *testing.T) {
	f := newFixture(t, true)
	a := f.add(t, answerui.NewAnswer("Covered [DocA].", "", []string{"DocB: y"}))
	base := "/answers/" + a.ID.String() + "/citations/"

	rec := f.do(http.MethodGet, base+"2", false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/ui/content/DocB" {
		t.Errorf("Location = %q, want /ui/content/DocB", loc)
	}

	rec = f.do(http.MethodGet, base+"1", true)
	if rec.Code != http.StatusNoContent || rec.Header().Get("HX-Redirect") != "/ui/content/DocA" {
		t.Errorf("htmx click: status = %d, HX-Redirect = %q", rec.Code, rec.Header().Get("HX-Redirect"))
	}

	if rec := f.do(http.MethodGet, base+"3", false); rec.Code != http.StatusNotFound {
		t.Errorf("out of range status = %d, want 404", rec.Code)
	}

	want := []string{"/ui/content/DocB", "/ui/content/DocA"}
	if strings.Join(f.actions.citations, ",") != strings.Join(want, ",") {
		t.Errorf("citations clicked = %v, want %v", f.actions.citations, want)
	}
}

func TestInlineReferenceClick(t *testing.T) {
	f := newFixture(t, true)
	a := f.add(t, answerui.NewAnswer("Covered [plan.pdf].", "", nil))

	rec := f.do(http.MethodGet, "/answers/"+a.ID.String(), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	target := "/ui/answers/" + a.ID.String() + "/citations/1"
	inline := `<a class="sup-container" title="plan.pdf" href="` + target + `">`
	if !strings.Contains(rec.Body.String(), inline) {
		t.Fatalf("inline reference does not use the click route:\n%s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), `href="/ui/content/plan.pdf"`) {
		t.Errorf("fragment links the document directly:\n%s", rec.Body.String())
	}

	rec = f.do(http.MethodGet, strings.TrimPrefix(target, "/ui"), false)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/ui/content/plan.pdf" {
		t.Errorf("inline click: status = %d, Location = %q", rec.Code, rec.Header().Get("Location"))
	}
	if len(f.actions.citations) != 1 || f.actions.citations[0] != "/ui/content/plan.pdf" {
		t.Errorf("citations clicked = %v, want [/ui/content/plan.pdf]", f.actions.citations)
	}
}

func TestTriggerPanels(t *testing.T) {
	f := newFixture(t, true)
	full := f.add(t, answerui.NewAnswer("x", "Searched for:<br>plans", []string{"plan.pdf: Gold"}))
	bare := f.add(t, answerui.NewAnswer("y", "", nil))

	rec := f.do(http.MethodGet, "/answers/"+full.ID.String()+"/thoughts", true)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "plans") {
		t.Errorf("thoughts: status = %d body = %q", rec.Code, rec.Body.String())
	}
	rec = f.do(http.MethodGet, "/answers/"+full.ID.String()+"/supporting-content", true)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "plan.pdf") {
		t.Errorf("supporting content: status = %d body = %q", rec.Code, rec.Body.String())
	}

	if rec := f.do(http.MethodGet, "/answers/"+bare.ID.String()+"/thoughts", true); rec.Code != http.StatusConflict {
		t.Errorf("disabled thoughts status = %d, want 409", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/answers/"+bare.ID.String()+"/supporting-content", true); rec.Code != http.StatusConflict {
		t.Errorf("disabled supporting content status = %d, want 409", rec.Code)
	}

	if f.actions.thoughts != 1 || f.actions.supporting != 1 {
		t.Errorf("actions = %d/%d, want 1/1", f.actions.thoughts, f.actions.supporting)
	}
}

func TestFollowupClick(t *testing.T) {
	f := newFixture(t, true)
	a := f.add(t, answerui.NewAnswer("x <<One?>><<Two?>>", "", nil))

	rec := f.do(http.MethodPost, "/answers/"+a.ID.String()+"/followups/1", true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("HX-Trigger"); got != `{"followupQuestion":"Two?"}` {
		t.Errorf("HX-Trigger = %q", got)
	}
	if len(f.actions.followups) != 1 || f.actions.followups[0] != "Two?" {
		t.Errorf("followups = %v", f.actions.followups)
	}
}

func TestFollowupClick_Hidden(t *testing.T) {
	f := newFixture(t, false)
	a := f.add(t, answerui.NewAnswer("x <<One?>>", "", nil))

	rec := f.do(http.MethodPost, "/answers/"+a.ID.String()+"/followups/0", true)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if len(f.actions.followups) != 0 {
		t.Errorf("followups = %v, want none", f.actions.followups)
	}
}

func TestExampleClick(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodPost, "/examples/1", true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	want := examples.Default()[1].Value
	if len(f.actions.examples) != 1 || f.actions.examples[0] != want {
		t.Errorf("examples = %v, want [%q]", f.actions.examples, want)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "exampleClicked") {
		t.Errorf("HX-Trigger = %q", rec.Header().Get("HX-Trigger"))
	}

	if rec := f.do(http.MethodPost, "/examples/9", true); rec.Code != http.StatusNotFound {
		t.Errorf("out of range status = %d, want 404", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := frontendRecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		n    int
		in   string
		want string
	}{
		{10, "short", "short"},
		{8, "a longer text", "a lon..."},
		{2, "abc", "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.n, tt.in); got != tt.want {
			t.Errorf("truncate(%d, %q) = %q, want %q", tt.n, tt.in, got, tt.want)
		}
	}
}
