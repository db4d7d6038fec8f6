// Package sanitize holds the allow-list HTML policy applied to every answer
// body before it reaches a page.
//
// Answer HTML is derived from model output and must be treated as untrusted.
// The policy starts from bluemonday's UGC policy, which keeps formatting and
// tables and strips scripts, event handlers and unsafe URL schemes, and adds
// the few attributes the answer markup relies on.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans untrusted HTML.
type Sanitizer interface {
	Sanitize(raw string) string
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(raw string) string

// Sanitize calls f(raw).
func (f SanitizerFunc) Sanitize(raw string) string {
	return f(raw)
}

// classRe limits class values to plain class names.
var classRe = regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)

// Policy is a Sanitizer backed by a bluemonday policy.
type Policy struct {
	p *bluemonday.Policy
}

// New returns the answer policy.
func New() *Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classRe).OnElements("a", "sup", "span", "table", "td", "th")
	p.AllowAttrs("title").OnElements("a")
	p.RequireNoFollowOnLinks(false)
	return &Policy{p: p}
}

// Strict returns a policy that keeps text only.
func Strict() *Policy {
	return &Policy{p: bluemonday.StrictPolicy()}
}

// Sanitize implements Sanitizer.
func (s *Policy) Sanitize(raw string) string {
	return s.p.Sanitize(raw)
}
