// Package parser turns raw answer text into render data.
//
// The chat backend asks the model to reference sources in square brackets
// ("[info1.txt]") and to suggest next questions in double angle brackets
// ("<<Is dental included?>>"). Parse extracts both: follow-up questions are
// lifted out of the body, and citation markers become numbered references.
package parser

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/youssefsiam38/answerui"
	"github.com/youssefsiam38/answerui/citation"
)

// CitationClass is the class attribute of inline citation references.
const CitationClass = "sup-container"

var (
	followupRe = regexp.MustCompile(`<<([^>]+)>>`)
	citationRe = regexp.MustCompile(`\[([^\]]+)\]`)
)

// Options adjust how Parse builds references.
type Options struct {
	// Href builds the target of the reference numbered n for label. Nil
	// links to the resolved document path.
	Href func(label string, n int) string

	// MarkdownLinks leaves "[text](url)" and "![alt](src)" alone so a
	// later markdown pass can render them.
	MarkdownLinks bool
}

// Parse extracts follow-up questions and citations from text.
//
// Every citation marker is replaced by a reference whose number is the
// label's position in the returned Citations. Text that does not form a
// complete marker is left as is. The returned HTML is not sanitized.
func Parse(text string, r citation.Resolver) answerui.ParsedAnswer {
	return ParseWith(text, r, Options{})
}

// ParseWith is Parse with options.
func ParseWith(text string, r citation.Resolver, opts Options) answerui.ParsedAnswer {
	if r == nil {
		r = citation.ContentResolver{}
	}
	href := opts.Href
	if href == nil {
		href = func(label string, _ int) string { return r.Resolve(label) }
	}

	followups := []string{}
	body := followupRe.ReplaceAllStringFunc(text, func(m string) string {
		followups = append(followups, followupRe.FindStringSubmatch(m)[1])
		return ""
	})
	body = strings.TrimSpace(body)

	citations := []string{}
	index := make(map[string]int)

	var b strings.Builder
	b.Grow(len(body))
	last := 0
	for _, loc := range citationRe.FindAllStringSubmatchIndex(body, -1) {
		if opts.MarkdownLinks && loc[1] < len(body) && body[loc[1]] == '(' {
			continue
		}
		b.WriteString(body[last:loc[0]])
		label := body[loc[2]:loc[3]]

		n, ok := index[label]
		if !ok {
			citations = append(citations, label)
			n = len(citations)
			index[label] = n
		}
		writeReference(&b, label, n, href(label, n))
		last = loc[1]
	}
	b.WriteString(body[last:])

	return answerui.ParsedAnswer{
		HTML:              b.String(),
		Citations:         citations,
		FollowupQuestions: followups,
	}
}

func writeReference(b *strings.Builder, label string, n int, path string) {
	b.WriteString(`<a class="`)
	b.WriteString(CitationClass)
	b.WriteString(`" title="`)
	b.WriteString(html.EscapeString(label))
	b.WriteString(`" href="`)
	b.WriteString(html.EscapeString(path))
	b.WriteString(`"><sup>`)
	b.WriteString(strconv.Itoa(n))
	b.WriteString(`</sup></a>`)
}
